package contact

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/aghadi/aghadi-api/pkg/cl/validation"
)

func TestParseSubmissionInput(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantName     string
		wantEmail    string
		wantPhone    string
		wantMessage  string
		wantServices []string
	}{
		{
			name:         "complete",
			body:         `{"name":"Alice","email":"a@x.com","phone":"555","services":["Web","SEO"],"message":"Hi"}`,
			wantName:     "Alice",
			wantEmail:    "a@x.com",
			wantPhone:    "555",
			wantMessage:  "Hi",
			wantServices: []string{"Web", "SEO"},
		},
		{
			name:      "optional fields absent",
			body:      `{"name":"Bob","email":"b@x.com"}`,
			wantName:  "Bob",
			wantEmail: "b@x.com",
		},
		{
			name:         "empty services array",
			body:         `{"name":"Bob","email":"b@x.com","services":[]}`,
			wantName:     "Bob",
			wantEmail:    "b@x.com",
			wantServices: []string{},
		},
		{
			name:      "services as string",
			body:      `{"name":"Bob","email":"b@x.com","services":"Web"}`,
			wantName:  "Bob",
			wantEmail: "b@x.com",
		},
		{
			name:      "services with non-string item",
			body:      `{"name":"Bob","email":"b@x.com","services":["Web",3]}`,
			wantName:  "Bob",
			wantEmail: "b@x.com",
		},
		{
			name:      "non-string values count as absent",
			body:      `{"name":42,"email":true,"phone":null,"message":{"a":1}}`,
			wantName:  "",
			wantEmail: "",
		},
		{
			name:      "repeated key keeps last value",
			body:      `{"name":"A","email":"first@x.com","name":"Alice","email":"a@x.com"}`,
			wantName:  "Alice",
			wantEmail: "a@x.com",
		},
		{name: "invalid json", body: `{"name":"Alice",`},
		{name: "array body", body: `[{"name":"Alice"}]`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ParseSubmissionInput([]byte(tt.body))

			if in.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", in.Name, tt.wantName)
			}
			if in.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", in.Email, tt.wantEmail)
			}
			if in.Phone != tt.wantPhone {
				t.Errorf("Phone = %q, want %q", in.Phone, tt.wantPhone)
			}
			if in.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", in.Message, tt.wantMessage)
			}
			if !reflect.DeepEqual(in.Services, tt.wantServices) {
				t.Errorf("Services = %#v, want %#v", in.Services, tt.wantServices)
			}
		})
	}
}

func TestSubmissionInputValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "valid", body: `{"name":"Alice","email":"a@x.com"}`},
		{name: "whitespace name accepted", body: `{"name":" ","email":"a@x.com"}`},
		{name: "missing name", body: `{"email":"a@x.com"}`, wantFields: []string{"name"}},
		{name: "empty email", body: `{"name":"Alice","email":""}`, wantFields: []string{"email"}},
		{name: "both missing", body: `{}`, wantFields: []string{"name", "email"}},
		{name: "repeated name ends empty", body: `{"name":"A","name":"","email":"a@x.com"}`, wantFields: []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseSubmissionInput([]byte(tt.body)).Validate()
			if tt.wantFields == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verrs validation.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error = %v, want ValidationErrors", err)
			}
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			if !reflect.DeepEqual(fields, tt.wantFields) {
				t.Errorf("invalid fields = %v, want %v", fields, tt.wantFields)
			}
		})
	}
}

func TestSubmissionInputEcho(t *testing.T) {
	t.Run("echoes submitted values", func(t *testing.T) {
		in := ParseSubmissionInput([]byte(`{"name":"Alice","email":"a@x.com","services":"not-a-list","extra":1}`))

		data, err := json.Marshal(in.Echo(7))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		want := `{"id":7,"name":"Alice","email":"a@x.com","services":"not-a-list"}`
		if string(data) != want {
			t.Errorf("Echo = %s, want %s", data, want)
		}
	})

	t.Run("repeated key echoes last value", func(t *testing.T) {
		in := ParseSubmissionInput([]byte(`{"name":"A","name":"Alice","email":"a@x.com"}`))

		data, err := json.Marshal(in.Echo(2))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		want := `{"id":2,"name":"Alice","email":"a@x.com"}`
		if string(data) != want {
			t.Errorf("Echo = %s, want %s", data, want)
		}
	})

	t.Run("keeps explicit null", func(t *testing.T) {
		in := ParseSubmissionInput([]byte(`{"name":"Alice","email":"a@x.com","phone":null}`))

		data, err := json.Marshal(in.Echo(1))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		want := `{"id":1,"name":"Alice","email":"a@x.com","phone":null}`
		if string(data) != want {
			t.Errorf("Echo = %s, want %s", data, want)
		}
	})
}
