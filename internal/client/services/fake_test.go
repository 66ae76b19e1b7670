package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// fakeClient implements client.Client for controller tests.
type fakeClient struct {
	mu sync.Mutex

	LoginToken string
	LoginErr   error

	Pages   map[int]*models.Page
	ListErr error
	// gates, when set for a page, blocks ListUsers until the channel is closed.
	gates map[int]chan struct{}

	Users     map[int]models.User
	GetErr    error
	UpdateErr error
	DeleteErr error

	LoginCalls  int
	ListCalls   []int
	GetCalls    []int
	UpdateCalls []models.Draft
	DeleteCalls []int
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) ListUsers(_ context.Context, page int) (*models.Page, error) {
	f.mu.Lock()
	f.ListCalls = append(f.ListCalls, page)
	gate := f.gates[page]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	p, ok := f.Pages[page]
	if !ok {
		return &models.Page{Page: page, Users: []models.User{}}, nil
	}
	cp := *p
	cp.Users = append([]models.User(nil), p.Users...)
	return &cp, nil
}

func (f *fakeClient) GetUser(_ context.Context, id int) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls = append(f.GetCalls, id)
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	u := f.Users[id]
	return &u, nil
}

func (f *fakeClient) UpdateUser(_ context.Context, id int, d models.Draft) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls = append(f.UpdateCalls, d)
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	return &models.User{ID: id, FirstName: d.FirstName, LastName: d.LastName, Email: d.Email}, nil
}

func (f *fakeClient) DeleteUser(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls = append(f.DeleteCalls, id)
	return f.DeleteErr
}

func (f *fakeClient) gate(page int) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gates == nil {
		f.gates = map[int]chan struct{}{}
	}
	ch := make(chan struct{})
	f.gates[page] = ch
	return ch
}

func (f *fakeClient) listCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.ListCalls...)
}

type staticGuard bool

func (g staticGuard) IsAuthenticated() bool { return bool(g) }

func samplePage() *models.Page {
	return &models.Page{
		Page:       1,
		PerPage:    6,
		Total:      12,
		TotalPages: 2,
		Users: []models.User{
			{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
			{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"},
			{ID: 3, Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong"},
			{ID: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt"},
			{ID: 5, Email: "charles.morris@reqres.in", FirstName: "Charles", LastName: "Morris"},
			{ID: 6, Email: "tracey.ramos@reqres.in", FirstName: "Tracey", LastName: "Ramos"},
		},
	}
}

func ids(users []models.User) []int {
	out := make([]int, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
