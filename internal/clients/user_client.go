package clients

import "context"

// UserServiceName is the logical name the resolver knows the user service by.
const UserServiceName = "user-service"

// UserDetails is the user service's response shape, as seen by its consumers.
type UserDetails struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// UserClient fetches user details from the remote user service.
type UserClient struct {
	caller *Caller
}

// NewUserClient creates a new UserClient.
func NewUserClient(caller *Caller) *UserClient {
	return &UserClient{caller: caller}
}

// GetUser returns the user with the given id, or (nil, nil) when the user
// service reports them absent.
func (c *UserClient) GetUser(ctx context.Context, id string) (*UserDetails, error) {
	var user UserDetails
	found, err := c.caller.GetJSON(ctx, UserServiceName, "/api/users/"+id, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}
