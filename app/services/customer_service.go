package services

import (
	"time"

	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/app/repositories"
	"github.com/atelierhq/atelier/pkg/collection"
)

// CustomerStats is one customer row with their lifetime order metrics.
type CustomerStats struct {
	User        models.User `json:"user"`
	TotalOrders int64       `json:"total_orders"`
	TotalSpent  float64     `json:"total_spent"`
	LastOrder   *time.Time  `json:"last_order,omitempty"`
}

// CustomerOverview is everything the customers page renders.
type CustomerOverview struct {
	Stats           []CustomerStats `json:"stats"`
	TotalCustomers  int64           `json:"total_customers"`
	ActiveCustomers int64           `json:"active_customers"`
	TopSpenders     []CustomerStats `json:"top_spenders"`
	RecentSignups   []models.User   `json:"recent_signups"`
}

// CustomerService derives per-customer metrics from users and orders.
type CustomerService struct {
	users  *repositories.UserRepository
	orders *repositories.OrderRepository
}

func NewCustomerService() *CustomerService {
	return &CustomerService{
		users:  repositories.NewUserRepository(),
		orders: repositories.NewOrderRepository(),
	}
}

// Overview loads all users and all orders once and folds the orders into
// per-customer accumulators in a single pass, so cost stays linear in
// users + orders rather than users * orders.
func (s *CustomerService) Overview() (CustomerOverview, error) {
	users, err := s.users.All()
	if err != nil {
		return CustomerOverview{}, err
	}

	orders, err := s.orders.All()
	if err != nil {
		return CustomerOverview{}, err
	}

	type acc struct {
		count int64
		spent float64
		last  time.Time
	}
	byUser := make(map[uint]*acc, len(users))
	for _, o := range orders {
		a := byUser[o.UserID]
		if a == nil {
			a = &acc{}
			byUser[o.UserID] = a
		}
		a.count++
		a.spent += o.Total
		if o.CreatedAt.After(a.last) {
			a.last = o.CreatedAt
		}
	}

	stats := collection.Map(users, func(u models.User) CustomerStats {
		cs := CustomerStats{User: u}
		if a := byUser[u.ID]; a != nil {
			cs.TotalOrders = a.count
			cs.TotalSpent = a.spent
			last := a.last
			cs.LastOrder = &last
		}
		return cs
	})

	active := collection.Filter(stats, func(cs CustomerStats) bool { return cs.TotalOrders > 0 })

	topSpenders := collection.Take(
		collection.SortBy(stats, func(a, b CustomerStats) bool { return a.TotalSpent > b.TotalSpent }),
		5,
	)

	recent := collection.Take(
		collection.SortBy(users, func(a, b models.User) bool { return a.CreatedAt.After(b.CreatedAt) }),
		5,
	)

	return CustomerOverview{
		Stats:           stats,
		TotalCustomers:  int64(len(users)),
		ActiveCustomers: int64(len(active)),
		TopSpenders:     topSpenders,
		RecentSignups:   recent,
	}, nil
}
