package profile

// Profile is the singleton employee record. It has no id.
type Profile struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	JoinDate   string  `json:"joinDate"` // YYYY-MM-DD
	Salary     float64 `json:"salary"`
	Age        float64 `json:"age"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	ImageURL   string  `json:"imageUrl"`
}

// Default is the profile used until one has been saved.
func Default() Profile {
	return Profile{
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		Role:       "Software Engineer",
		Department: "Engineering",
		JoinDate:   "2023-01-15",
		Salary:     75000,
		Age:        28,
		Phone:      "+1 (555) 123-4567",
		Address:    "123 Tech Street, Silicon Valley, CA 94025",
		ImageURL:   "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=400",
	}
}

// FirstName returns the greeting name shown on the dashboard.
func (p Profile) FirstName() string {
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}
