package dto

type StatsResponse struct {
	PatientCount      int64   `json:"patientCount"`
	AppointmentCount  int64   `json:"appointmentCount"`
	AppointmentsToday int64   `json:"appointmentsToday"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
