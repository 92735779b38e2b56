package dto

type DashboardResponse struct {
	Date                string  `json:"date"`
	BookingsToday       int     `json:"bookings_today"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	MostActiveProfessor string  `json:"most_active_professor"`
	LowStockMaterials   int     `json:"low_stock_materials"`
}
