package cnpj

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	valid := map[string]string{
		"11.222.333/0001-81": "11222333000181",
		"11222333000181":     "11222333000181",
		" 19131243000197 ":   "19131243000197",
	}
	for in, want := range valid {
		got, err := Normalize(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %q, got %q (err %v)", in, want, got, err)
		}
	}

	invalid := []string{"", "11.222.333/0001-82", "1122233300018", "00000000000000", "11222333000181x", "abc"}
	for _, in := range invalid {
		if _, err := Normalize(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%q: expected ErrInvalid, got %v", in, err)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format("11222333000181"); got != "11.222.333/0001-81" {
		t.Fatalf("unexpected format %q", got)
	}
	if got := Format("123"); got != "123" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}
