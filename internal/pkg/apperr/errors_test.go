package apperr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("expected sentinel message to be untouched, got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("expected derived message to equal 'changed', got '%s'", changedE.Message)
	}
}

func TestExtrasCopy(t *testing.T) {
	e := New(409, CodeDoorOccupied, "occupied")
	withExtras := e.WithExtras(Extras{"door": 7})
	if e.Extras != nil {
		t.Error("expected sentinel extras to stay nil")
	}
	if withExtras.Extras == nil || (*withExtras.Extras)["door"] != 7 {
		t.Error("expected derived error to carry extras")
	}
}
