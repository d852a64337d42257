package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type testStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "valid JSON", data: []byte(`{"name":"test"}`), wantErr: false},
		{name: "invalid JSON", data: []byte(`not json`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v testStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("error %q should carry context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	type quote struct {
		Text   string `json:"text"`
		Author string `json:"author"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    quote
	}{
		{name: "object", body: `{"text":"hi","author":"me"}`, want: quote{Text: "hi", Author: "me"}},
		{name: "empty body", body: "", wantErr: true},
		{name: "whitespace body", body: " \n", wantErr: true},
		{name: "invalid JSON", body: `{"text":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[quote](strings.NewReader(tt.body), "decode quote")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeArrayAllowEmpty(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantLen int
	}{
		{name: "non-empty array", body: `[{"id":1},{"id":2}]`, wantLen: 2},
		{name: "empty array", body: `[]`, wantLen: 0},
		{name: "null", body: `null`, wantLen: 0},
		{name: "object instead of array", body: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeArrayAllowEmpty[item](strings.NewReader(tt.body), "list")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeArrayAllowEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil {
				t.Error("DecodeArrayAllowEmpty() returned nil slice")
			}
			if len(got) != tt.wantLen {
				t.Errorf("DecodeArrayAllowEmpty() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"name is required"}`, "name is required"},
		{"message field", `{"message":"not found"}`, "not found"},
		{"plain text", "  gateway timeout\n", "gateway timeout"},
		{"object without known keys", `{"code":7}`, `{"code":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
