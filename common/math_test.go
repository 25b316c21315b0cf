package common

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, want 5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10,20,0) = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10,20,1) = %v, want 20", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %v, want 10", got)
	}
}

func TestMoveToward(t *testing.T) {
	if got := MoveToward(0, 10, 3); got != 3 {
		t.Errorf("MoveToward(0,10,3) = %v, want 3", got)
	}
	if got := MoveToward(9, 10, 3); got != 10 {
		t.Errorf("MoveToward(9,10,3) = %v, want no overshoot", got)
	}
	if got := MoveToward(10, 0, 4); got != 6 {
		t.Errorf("MoveToward(10,0,4) = %v, want 6", got)
	}
	if got := MoveToward(5, 5, 1); got != 5 {
		t.Errorf("MoveToward(5,5,1) = %v, want 5", got)
	}
}

func TestSign(t *testing.T) {
	if got := Sign(3.2); got != 1 {
		t.Errorf("Sign(3.2) = %v, want 1", got)
	}
	if got := Sign(-0.1); got != -1 {
		t.Errorf("Sign(-0.1) = %v, want -1", got)
	}
	if got := Sign(0); got != 0 {
		t.Errorf("Sign(0) = %v, want 0", got)
	}
}
