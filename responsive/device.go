package responsive

import (
	"github.com/automoto/coffeeon/config"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Device describes the host hardware. Zero values mean unknown.
type Device struct {
	MemoryBytes uint64
	CPUs        int
}

// IsLowEnd reports whether the host is at or below either threshold
func (d Device) IsLowEnd(cfg config.BreakpointsConfig) bool {
	if d.MemoryBytes > 0 && cfg.LowEndMemoryBytes > 0 && d.MemoryBytes <= cfg.LowEndMemoryBytes {
		return true
	}
	return d.CPUs > 0 && cfg.LowEndCPUs > 0 && d.CPUs <= cfg.LowEndCPUs
}

// DetectDevice queries the host. Failures leave the field unknown.
func DetectDevice() Device {
	var d Device
	if vm, err := mem.VirtualMemory(); err != nil {
		log.Warn().Err(err).Str("component", "responsive").Msg("memory query failed")
	} else {
		d.MemoryBytes = vm.Total
	}
	if n, err := cpu.Counts(true); err != nil {
		log.Warn().Err(err).Str("component", "responsive").Msg("cpu query failed")
	} else {
		d.CPUs = n
	}
	return d
}
