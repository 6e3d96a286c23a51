package decode

import (
	"errors"
	"testing"
)

func TestTargetString(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		field   string
		want    string
		wantErr error
	}{
		{
			name:   "present",
			target: Target{"value": "abc123"},
			field:  "value",
			want:   "abc123",
		},
		{
			name:    "missing",
			target:  Target{},
			field:   "value",
			wantErr: ErrMissingField,
		},
		{
			name:    "wrong type",
			target:  Target{"value": 42},
			field:   "value",
			wantErr: ErrWrongType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.target.String(tt.field)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("String() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("String() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTargetBool(t *testing.T) {
	target := Target{"checked": true, "value": "x"}

	got, err := target.Bool("checked")
	if err != nil {
		t.Fatalf("Bool() error = %v", err)
	}
	if !got {
		t.Error("Bool() = false, want true")
	}

	if _, err := target.Bool("value"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Bool() on string field: error = %v, want ErrWrongType", err)
	}
	if _, err := target.Bool("missing"); !errors.Is(err, ErrMissingField) {
		t.Errorf("Bool() on missing field: error = %v, want ErrMissingField", err)
	}
}

type inputMsg struct {
	text string
}

func TestValueHandler(t *testing.T) {
	h := Value(func(s string) any { return inputMsg{text: s} })

	r, err := h(Target{"value": "abc123"})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	msg, ok := r.Msg.(inputMsg)
	if !ok {
		t.Fatalf("message type = %T, want inputMsg", r.Msg)
	}
	if msg.text != "abc123" {
		t.Errorf("message payload = %q, want %q", msg.text, "abc123")
	}
	if !r.StopPropagation {
		t.Error("input binding should stop propagation")
	}
	if r.PreventDefault {
		t.Error("input binding should not prevent default")
	}
}

func TestValueHandlerDecodeFailure(t *testing.T) {
	h := Value(func(s string) any { return s })

	if _, err := h(Target{"checked": true}); !errors.Is(err, ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
}

func TestCheckedHandler(t *testing.T) {
	h := Checked(func(b bool) any { return b })

	r, err := h(Target{"checked": true})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if r.Msg != true {
		t.Errorf("message = %v, want true", r.Msg)
	}
	if !r.StopPropagation {
		t.Error("check binding should stop propagation")
	}
}

func TestMap(t *testing.T) {
	h := Map(Value(func(s string) any { return s }), func(m any) any {
		return "wrapped:" + m.(string)
	})

	r, err := h(Target{"value": "x"})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if r.Msg != "wrapped:x" {
		t.Errorf("message = %v, want wrapped:x", r.Msg)
	}
	if !r.StopPropagation {
		t.Error("Map should preserve propagation flags")
	}
}
