package dto

type DashboardStats struct {
	TotalAppointmentsToday int     `json:"totalAppointmentsToday"`
	CompletedToday         int     `json:"completedToday"`
	PendingToday           int     `json:"pendingToday"`
	IncomeToday            float64 `json:"incomeToday"`
	TotalClients           int64   `json:"totalClients"`
	TotalBarbers           int64   `json:"totalBarbers"`
}
