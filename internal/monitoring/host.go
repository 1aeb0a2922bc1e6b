package monitoring

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats is the infrastructure snapshot shown on the panel's admin
// dashboard.
type HostStats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsedMB      uint64  `json:"memory_used_mb"`
	MemoryTotalMB     uint64  `json:"memory_total_mb"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskUsedGB        uint64  `json:"disk_used_gb"`
	DiskTotalGB       uint64  `json:"disk_total_gb"`
}

type Collector struct {
	db *pgxpool.Pool
}

func NewCollector(db *pgxpool.Pool) *Collector {
	return &Collector{db: db}
}

// Collect gathers host and database stats. Individual gopsutil failures
// leave that section zeroed rather than failing the snapshot.
func (c *Collector) Collect(ctx context.Context) HostStats {
	stats := HostStats{DatabaseStatus: "healthy"}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := c.db.Ping(pingCtx); err != nil {
		stats.DatabaseStatus = "unhealthy"
	}
	stats.ResponseTime = time.Since(start).Milliseconds()
	stats.ActiveConnections = int(c.db.Stat().AcquiredConns())

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsedMB = vm.Used / 1024 / 1024
		stats.MemoryTotalMB = vm.Total / 1024 / 1024
	}

	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
		stats.DiskUsedGB = du.Used / 1024 / 1024 / 1024
		stats.DiskTotalGB = du.Total / 1024 / 1024 / 1024
	}

	return stats
}
