package users

import (
	"github.com/pawmart/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// DemoState seeds the dummy profile the storefront ships with: one signed-in
// user, two addresses with one default, and three historical orders.
func DemoState() *State {
	phone := "+1 (555) 789-0123"
	dob := "1988-03-22"

	addresses := []Address{
		{
			ID:        "1",
			Name:      "Home",
			Street:    "247 Garden Terrace, Unit 12A",
			City:      "Portland",
			State:     "OR",
			ZipCode:   "97201",
			Country:   "United States",
			IsDefault: true,
		},
		{
			ID:      "2",
			Name:    "Weekend House",
			Street:  "89 Countryside Lane",
			City:    "Bend",
			State:   "OR",
			ZipCode: "97703",
			Country: "United States",
		},
	}

	return &State{
		User: &User{
			ID:          "1",
			Name:        "Alex Chen",
			Email:       "alex.chen@email.com",
			Phone:       &phone,
			DateOfBirth: &dob,
		},
		Addresses:       addresses,
		Orders:          demoOrders(addresses),
		IsAuthenticated: true,
	}
}

func demoOrders(addresses []Address) []Order {
	return []Order{
		{
			ID:     "EDN-001",
			Date:   "2025-01-15",
			Status: enums.OrderStatusDelivered,
			Items: []OrderItem{
				{
					ProductID:   "1",
					ProductName: "Minimalist Pet Bed",
					Quantity:    2,
					Price:       decimal.NewFromInt(89),
					Image:       "https://cdn.pawmart.dev/products/minimalist-pet-bed-1.jpg",
				},
				{
					ProductID:   "4",
					ProductName: "Wall-Mounted Pet Feeder",
					Quantity:    1,
					Price:       decimal.NewFromInt(75),
					Image:       "https://cdn.pawmart.dev/products/wall-mounted-pet-feeder-1.jpg",
				},
			},
			Total:           decimal.NewFromInt(253),
			ShippingAddress: addresses[0],
		},
		{
			ID:     "EDN-002",
			Date:   "2025-01-08",
			Status: enums.OrderStatusShipped,
			Items: []OrderItem{
				{
					ProductID:   "2",
					ProductName: "Ceramic Food Bowl Set",
					Quantity:    1,
					Price:       decimal.NewFromInt(145),
					Image:       "https://cdn.pawmart.dev/products/ceramic-food-bowl-set-1.jpg",
				},
				{
					ProductID:   "6",
					ProductName: "Designer Water Fountain",
					Quantity:    1,
					Price:       decimal.NewFromInt(125),
					Image:       "https://cdn.pawmart.dev/products/designer-water-fountain-1.jpg",
				},
			},
			Total:           decimal.NewFromInt(270),
			ShippingAddress: addresses[0],
		},
		{
			ID:     "EDN-003",
			Date:   "2024-12-20",
			Status: enums.OrderStatusDelivered,
			Items: []OrderItem{
				{
					ProductID:   "8",
					ProductName: "Smart Pet Activity Monitor",
					Quantity:    1,
					Price:       decimal.NewFromInt(220),
					Image:       "https://cdn.pawmart.dev/products/smart-pet-activity-monitor-1.jpg",
				},
			},
			Total:           decimal.NewFromInt(220),
			ShippingAddress: addresses[1],
		},
	}
}
