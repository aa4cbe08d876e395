package validator

import "testing"

type signUpForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	v := New()

	if errs := v.ValidateStruct(signUpForm{Email: "jane@example.com", Password: "secret123"}); len(errs) != 0 {
		t.Errorf("valid struct produced errors: %+v", errs)
	}

	errs := v.ValidateStruct(signUpForm{Email: "nope", Password: "x"})
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(errs), errs)
	}
	if errs[0].Field != "Email" {
		t.Errorf("first error field = %q, want Email", errs[0].Field)
	}
	if errs[1].Field != "Password" {
		t.Errorf("second error field = %q, want Password", errs[1].Field)
	}
}

func TestMessagesAreDisplayText(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name string
		form signUpForm
		want string
	}{
		{name: "missing required", form: signUpForm{Password: "secret123"}, want: "Email is required"},
		{name: "bad email", form: signUpForm{Email: "nope", Password: "secret123"}, want: "Invalid email address"},
		{name: "too short", form: signUpForm{Email: "jane@example.com", Password: "x"}, want: "Password must be at least 6 characters"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			errs := v.ValidateStruct(tc.form)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
			}
			if errs[0].Message != tc.want {
				t.Errorf("Message = %q, want %q", errs[0].Message, tc.want)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	v := New()

	if errs := v.Validate("jane@example.com", "required,email"); len(errs) != 0 {
		t.Errorf("valid value produced errors: %+v", errs)
	}
	if errs := v.Validate("", "required"); len(errs) == 0 {
		t.Error("empty required value produced no errors")
	}
}
