package domain

import "time"

// GymClass is a scheduled group class. Class IDs are assigned from 1001
// upwards. The booked set is mutated only by members booking or cancelling
// for themselves; len(Booked) never exceeds Capacity.
type GymClass struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	TrainerID int       `json:"trainerId"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"` // "HH:MM"
	Capacity  int       `json:"capacity"`
	Booked    []int     `json:"booked"` // Member IDs, each at most once
}

// IsFull reports whether the class has no free slots.
func (c *GymClass) IsFull() bool {
	return len(c.Booked) >= c.Capacity
}

// HasBooked reports whether the member already holds a slot.
func (c *GymClass) HasBooked(memberID int) bool {
	for _, id := range c.Booked {
		if id == memberID {
			return true
		}
	}
	return false
}
