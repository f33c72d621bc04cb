package dashboard

import (
	"time"
)

type Dashboard struct {
	Stats       UserStats       `json:"stats"`
	Team        []TeamMember    `json:"team"`
	Pie         []PieSlice      `json:"pie"`
	Breakdown   []BreakdownItem `json:"breakdown"`
	Velocity    []VelocityItem  `json:"velocity"`
	RecentMoves []ActivityItem  `json:"recentMoves"`
}

type UserStats struct {
	UserSlices  float64 `json:"userSlices"`
	TotalSlices float64 `json:"totalSlices"`
	UserEquity  float64 `json:"userEquity"`
}

type TeamMember struct {
	UserId      string  `json:"userId"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Title       string  `json:"title"`
	TotalSlices float64 `json:"totalSlices"`
	Equity      float64 `json:"equity"`
}

type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type BreakdownItem struct {
	Name  string  `json:"name"`
	Time  float64 `json:"time"`
	Money float64 `json:"money"`
}

type VelocityItem struct {
	Date        time.Time `json:"date"`
	TotalSlices float64   `json:"totalSlices"`
}

type ActivityItem struct {
	UserName    string    `json:"userName"`
	Category    string    `json:"category"`
	Slices      float64   `json:"slices"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
