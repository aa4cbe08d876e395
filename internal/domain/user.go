package domain

type User struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	ProfilePic string   `json:"profilePic"`
	Bio        string   `json:"bio"`
	Followers  []string `json:"followers"`
	Following  []string `json:"following"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsFollowing reports whether u follows the given user id.
func (u *User) IsFollowing(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}
	return false
}
