package req

import (
	"strings"
	"testing"
)

type payload struct {
	Delta int    `json:"delta"`
	Name  string `json:"name"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"delta": -3, "name": "Ann"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Delta != -3 || got.Name != "Ann" {
		t.Errorf("got %+v", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":   "",
		"broken":  `{"delta":`,
		"unknown": `{"delta": 1, "extra": true}`,
		"type":    `{"delta": "one"}`,
	}
	for name, body := range cases {
		if _, err := Decode[payload](strings.NewReader(body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Decode[payload](nil); err == nil {
		t.Error("nil body: expected error")
	}
}
