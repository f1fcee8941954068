package utils

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthChecker struct {
	DB *gorm.DB
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	services := []Service{}
	overallStatus := "healthy"

	if h.DB != nil {
		service := Service{Name: h.DB.Dialector.Name()}
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		sqlDB, err := h.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		services = append(services, service)
		cancel()
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
