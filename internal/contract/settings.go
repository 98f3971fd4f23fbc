package contract

import (
	"github.com/alexanderramin/bittrack/internal/domain"
)

type SettingsResponse struct {
	Settings domain.Settings
	Accounts []*domain.WalletAccount
	// Saved is false while changes exist only in the working copy.
	Saved bool
}
