package directory

import (
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// DefaultToken is the token handed out on every successful login.
const DefaultToken = "QpwL5tke4Pnpja7X4"

// DefaultPerPage is the page size of GET /users.
const DefaultPerPage = 6

// SeedUsers returns the twelve well-known demo users.
func SeedUsers() []models.User {
	names := [][3]string{
		{"george.bluth@reqres.in", "George", "Bluth"},
		{"janet.weaver@reqres.in", "Janet", "Weaver"},
		{"emma.wong@reqres.in", "Emma", "Wong"},
		{"eve.holt@reqres.in", "Eve", "Holt"},
		{"charles.morris@reqres.in", "Charles", "Morris"},
		{"tracey.ramos@reqres.in", "Tracey", "Ramos"},
		{"michael.lawson@reqres.in", "Michael", "Lawson"},
		{"lindsay.ferguson@reqres.in", "Lindsay", "Ferguson"},
		{"tobias.funke@reqres.in", "Tobias", "Funke"},
		{"byron.fields@reqres.in", "Byron", "Fields"},
		{"george.edwards@reqres.in", "George", "Edwards"},
		{"rachel.howell@reqres.in", "Rachel", "Howell"},
	}

	users := make([]models.User, 0, len(names))
	for i, n := range names {
		id := i + 1
		users = append(users, models.User{
			ID:        id,
			Email:     n[0],
			FirstName: n[1],
			LastName:  n[2],
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		})
	}
	return users
}
