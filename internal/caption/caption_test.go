package caption

import (
	"errors"
	"testing"

	"golang.org/x/text/unicode/norm"

	apperrors "github.com/dbmrq/catsays/internal/errors"
)

func TestValidate_DisallowedScript(t *testing.T) {
	inputs := []string{
		"안녕",
		"hello 세계",
		"ㄱ",
		"ㅎ",
		"ㅏ",
		"ㅣ",
		"가",
		"힣",
		"abcㅋㅋ",
		norm.NFD.String("안녕"),
		"cat \u1112\u1161",
		// conjoining, halfwidth and archaic jamo
		"\u1100",
		"\u1161",
		"\u11A8",
		"\uFFA1",
		"\uFFC2",
		"\u3165",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Validate(in)
			if !errors.Is(err, ErrDisallowedScript) {
				t.Errorf("Validate(%q) error = %v, want ErrDisallowedScript", in, err)
			}
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("Validate(%q) error should carry the validation kind", in)
			}
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "HELLO"},
		{"Hello World", "HELLO WORLD"},
		{"already UPPER", "ALREADY UPPER"},
		{"123 cats!", "123 CATS!"},
		{"straße", "STRASSE"},
		{"こんにちは", "こんにちは"},
		{"a|b", "A|B"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Validate(tt.in)
			if err != nil {
				t.Fatalf("Validate(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	for _, in := range []string{"", " ", "\t\n"} {
		_, err := Validate(in)
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("Validate(%q) error = %v, want ErrEmpty", in, err)
		}
	}
}

func TestValidate_ScriptCheckedBeforeEmptiness(t *testing.T) {
	_, err := Validate(" 가 ")
	if !errors.Is(err, ErrDisallowedScript) {
		t.Errorf("error = %v, want ErrDisallowedScript", err)
	}
}

func TestCheckKeystroke(t *testing.T) {
	got, err := CheckKeystroke("hi")
	if err != nil || got != "HI" {
		t.Errorf("CheckKeystroke(hi) = %q, %v", got, err)
	}

	got, err = CheckKeystroke("hi 안녕")
	if !errors.Is(err, ErrDisallowedScript) {
		t.Errorf("error = %v, want ErrDisallowedScript", err)
	}
	if got != "HI 안녕" {
		t.Errorf("normalized = %q, want %q", got, "HI 안녕")
	}

	// emptiness is only checked at submission time
	if _, err := CheckKeystroke(""); err != nil {
		t.Errorf("CheckKeystroke(\"\") error = %v, want nil", err)
	}
}

func TestMessage(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}
	if Message(ErrDisallowedScript) != "You can't type in Korean." {
		t.Errorf("Message(ErrDisallowedScript) = %q", Message(ErrDisallowedScript))
	}
	if Message(ErrEmpty) != "You can't make a meme with an empty value." {
		t.Errorf("Message(ErrEmpty) = %q", Message(ErrEmpty))
	}
	if Message(errors.New("other")) != "" {
		t.Error("Message should ignore unrelated errors")
	}
}

func TestField_InputShowsAndClearsScriptError(t *testing.T) {
	var f Field

	f.Input("안")
	if f.Message() != MessageDisallowedScript {
		t.Errorf("Message() = %q, want %q", f.Message(), MessageDisallowedScript)
	}

	f.Input("")
	if f.Message() != "" {
		t.Errorf("Message() = %q, want cleared", f.Message())
	}

	f.Input("cat")
	if f.Value() != "CAT" {
		t.Errorf("Value() = %q, want CAT", f.Value())
	}
	if f.Err() != nil {
		t.Errorf("Err() = %v, want nil", f.Err())
	}
}

func TestField_Submit(t *testing.T) {
	t.Run("hello", func(t *testing.T) {
		var f Field
		f.Input("hello")

		got, err := f.Submit()
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if got != "HELLO" || f.Value() != "HELLO" {
			t.Errorf("Submit() = %q, Value() = %q, want HELLO", got, f.Value())
		}
	})

	t.Run("korean", func(t *testing.T) {
		var f Field
		f.Input("안녕")

		if _, err := f.Submit(); !errors.Is(err, ErrDisallowedScript) {
			t.Fatalf("Submit() error = %v, want ErrDisallowedScript", err)
		}
		if f.Message() != "You can't type in Korean." {
			t.Errorf("Message() = %q", f.Message())
		}
	})

	t.Run("empty", func(t *testing.T) {
		var f Field

		if _, err := f.Submit(); !errors.Is(err, ErrEmpty) {
			t.Fatalf("Submit() error = %v, want ErrEmpty", err)
		}
		if f.Message() != "You can't make a meme with an empty value." {
			t.Errorf("Message() = %q", f.Message())
		}
	})

	t.Run("error cleared on next good submit", func(t *testing.T) {
		var f Field
		_, _ = f.Submit()
		f.Input("ok")
		if _, err := f.Submit(); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if f.Message() != "" {
			t.Errorf("Message() = %q, want cleared", f.Message())
		}
	})
}
