// Package memory implements the repository ports with mutex-guarded maps.
// It backs STORE_DRIVER=memory and the HTTP tests. Records are copied on
// every read and write so callers never share state with the store.
package memory

import "adsight/internal/core/port"

var (
	_ port.UserRepository        = (*UserRepository)(nil)
	_ port.CampaignRepository    = (*CampaignRepository)(nil)
	_ port.AlertRepository       = (*AlertRepository)(nil)
	_ port.InteractionRepository = (*InteractionRepository)(nil)
)
