package contact

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/aghadi/aghadi-api/pkg/cl/validation"
)

const requiredFieldsMessage = "Name and email are required"

// SubmissionInput is a create request read field by field from a loosely
// typed JSON body.
type SubmissionInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
	// Services is nil unless the body carried an array of strings.
	Services []string

	fields map[string]gjson.Result
}

// ParseSubmissionInput reads the known fields out of body. A body that is
// not a JSON object is treated as empty. Non-string values count as absent.
// When a key repeats, its last occurrence wins.
func ParseSubmissionInput(body []byte) *SubmissionInput {
	in := &SubmissionInput{fields: map[string]gjson.Result{}}
	if !gjson.ValidBytes(body) {
		return in
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return in
	}
	root.ForEach(func(key, value gjson.Result) bool {
		in.fields[key.String()] = value
		return true
	})

	in.Name = in.stringField("name")
	in.Email = in.stringField("email")
	in.Phone = in.stringField("phone")
	in.Message = in.stringField("message")
	in.Services = servicesField(in.fields["services"])

	return in
}

// Validate checks the required fields.
func (in *SubmissionInput) Validate() error {
	var errs validation.ValidationErrors
	errs.Check(validation.RequiredString("name", in.Name))
	errs.Check(validation.RequiredString("email", in.Email))
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Echo builds the create response for the row assigned id.
func (in *SubmissionInput) Echo(id int64) *CreatedSubmission {
	return &CreatedSubmission{
		ID:       id,
		Name:     in.rawField("name"),
		Email:    in.rawField("email"),
		Phone:    in.rawField("phone"),
		Services: in.rawField("services"),
		Message:  in.rawField("message"),
	}
}

func (in *SubmissionInput) stringField(key string) string {
	v := in.fields[key]
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

func servicesField(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}

	services := []string{}
	ok := true
	v.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			ok = false
			return false
		}
		services = append(services, item.Str)
		return true
	})
	if !ok {
		return nil
	}
	return services
}

func (in *SubmissionInput) rawField(key string) json.RawMessage {
	v, ok := in.fields[key]
	if !ok {
		return nil
	}
	return json.RawMessage(v.Raw)
}
