package domain

import "testing"

func TestFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "both names", user: User{FirstName: "Jane", LastName: "Doe"}, want: "Jane Doe"},
		{name: "first only", user: User{FirstName: "Jane"}, want: "Jane"},
		{name: "last only", user: User{LastName: "Doe"}, want: "Doe"},
		{name: "neither", user: User{}, want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.user.FullName(); got != tc.want {
				t.Errorf("FullName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsFollowing(t *testing.T) {
	t.Parallel()

	u := User{Following: []string{"a", "b"}}
	if !u.IsFollowing("b") {
		t.Error("IsFollowing(b) = false, want true")
	}
	if u.IsFollowing("c") {
		t.Error("IsFollowing(c) = true, want false")
	}
}
