package models

import "time"

// DashboardMetricsID is the only primary key the dashboard_metrics table accepts.
const DashboardMetricsID uint = 1

// DashboardMetrics is a derived snapshot of User and Assessment data. The table holds zero or one row.
type DashboardMetrics struct {
	ID                   uint      `json:"-" gorm:"primaryKey;autoIncrement:false;check:dashboard_metrics_singleton,id = 1"`
	TotalUsers           int64     `json:"total_users"`
	ActiveUsers          int64     `json:"active_users"`
	AssessmentsCompleted int64     `json:"assessments_completed"`
	AverageScore         float64   `json:"average_score"`
	LastUpdated          time.Time `json:"last_updated"`
}

func (DashboardMetrics) TableName() string {
	return "dashboard_metrics"
}

// All lists every model owned by this service, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Assessment{},
		&ChatInteraction{},
		&Hackathon{},
		&HackathonParticipant{},
		&DashboardMetrics{},
	}
}
