package domain

// Owner identifies whose plants an operation targets. An empty UserID is the
// anonymous guest session whose plants live in local storage.
type Owner struct {
	UserID string
}

// Guest returns the anonymous owner.
func Guest() Owner {
	return Owner{}
}

// User returns an authenticated owner.
func User(id string) Owner {
	return Owner{UserID: id}
}

func (o Owner) IsGuest() bool {
	return o.UserID == ""
}

func (o Owner) String() string {
	if o.IsGuest() {
		return "guest"
	}
	return "user:" + o.UserID
}
