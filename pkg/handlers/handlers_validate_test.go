package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

func postValidate(t *testing.T, input models.AssignInput) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/assignment/validate", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h := &Handler{}
	h.ValidateInput(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	return resp
}

func TestValidateInput_OK(t *testing.T) {
	resp := postValidate(t, models.AssignInput{
		Sessions: []models.ScheduledSession{
			{CourseID: "CSE102", Batch: 21, Section: "A", Day: "Saturday", Time: 8, LevelTerm: "L-1 T-1"},
		},
		Rooms: []string{"R1", "R2"},
	})

	if resp["valid"] != true {
		t.Errorf("Expected valid input, got %v", resp)
	}
}

func TestValidateInput_DuplicateRoom(t *testing.T) {
	resp := postValidate(t, models.AssignInput{
		Sessions: []models.ScheduledSession{
			{CourseID: "CSE102", Batch: 21, Section: "A", Day: "Saturday", Time: 8, LevelTerm: "L-1 T-1"},
		},
		Rooms: []string{"R1", "R1"},
	})

	if resp["valid"] != false {
		t.Errorf("Expected duplicate room to be rejected, got %v", resp)
	}
}

func TestValidateInput_DuplicateSession(t *testing.T) {
	session := models.ScheduledSession{
		CourseID: "CSE102", Batch: 21, Section: "A", Day: "Saturday", Time: 8, LevelTerm: "L-1 T-1",
	}
	resp := postValidate(t, models.AssignInput{
		Sessions: []models.ScheduledSession{session, session},
		Rooms:    []string{"R1"},
	})

	if resp["valid"] != false {
		t.Errorf("Expected duplicate session to be rejected, got %v", resp)
	}
}

func TestValidateInput_UnknownDay(t *testing.T) {
	resp := postValidate(t, models.AssignInput{
		Sessions: []models.ScheduledSession{
			{CourseID: "CSE102", Batch: 21, Section: "A", Day: "Friday", Time: 8, LevelTerm: "L-1 T-1"},
		},
		Rooms: []string{"R1"},
	})

	if resp["valid"] != false {
		t.Errorf("Expected off-week day to be rejected, got %v", resp)
	}
}

func TestValidateInput_OffGridTime(t *testing.T) {
	resp := postValidate(t, models.AssignInput{
		Sessions: []models.ScheduledSession{
			{CourseID: "CSE102", Batch: 21, Section: "A", Day: "Saturday", Time: 7, LevelTerm: "L-1 T-1"},
		},
		Rooms: []string{"R1"},
	})

	if resp["valid"] != false {
		t.Errorf("Expected off-grid time to be rejected, got %v", resp)
	}
}

func TestValidateInput_PinUnknownRoom(t *testing.T) {
	resp := postValidate(t, models.AssignInput{
		Sessions: []models.ScheduledSession{
			{CourseID: "CSE102", Batch: 21, Section: "A", Day: "Saturday", Time: 8, LevelTerm: "L-1 T-1"},
		},
		Rooms: []string{"R1"},
		Pins:  map[string][]string{"CSE102": {"R9"}},
	})

	if resp["valid"] != false {
		t.Errorf("Expected unknown pinned room to be rejected, got %v", resp)
	}
}
