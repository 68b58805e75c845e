package bridge

import (
	"github.com/crosslock/bridge-go/state"
	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"
)

// Admin configuration stays available while the bridge is paused; the
// pause only gates custody-affecting traffic.

// SetSupportedAsset upserts an asset config. Admin-only.
func (b *Bridge) SetSupportedAsset(caller ethcommon.Address, cfg *state.AssetConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ok, err := b.isAuthorized(caller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthorized
	}

	if err := b.stdb.UpsertAsset(cfg); err != nil {
		logger.Errorf("asset upsert refused: caller=%s err=%v", caller, err)
		return ErrInvalidParameters
	}

	logger.Infof("asset configured: id=%s kind=%s active=%v",
		cfg.AssetId, cfg.Kind, cfg.Active)
	return nil
}

// SetSupportedChain upserts a chain config. Admin-only.
func (b *Bridge) SetSupportedChain(caller ethcommon.Address, cfg *state.ChainConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ok, err := b.isAuthorized(caller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthorized
	}

	if err := b.stdb.UpsertChain(cfg); err != nil {
		logger.Errorf("chain upsert refused: caller=%s err=%v", caller, err)
		return ErrInvalidParameters
	}

	logger.Infof("chain configured: id=%s method=%s active=%v",
		cfg.ChainId, cfg.Method, cfg.Active)
	return nil
}

// SetAdministrator activates or deactivates an admin identity. Owner-only.
func (b *Bridge) SetAdministrator(caller, target ethcommon.Address, active bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	owner, ok, err := b.stdb.GetOwner()
	if err != nil {
		return err
	}
	if !ok || owner != caller {
		return ErrNotAuthorized
	}

	if target == (ethcommon.Address{}) {
		return ErrInvalidParameters
	}

	return b.stdb.SetAdmin(target, active)
}

// SetPaused flips the circuit breaker. Owner or active admin.
func (b *Bridge) SetPaused(caller ethcommon.Address, paused bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ok, err := b.isAuthorized(caller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthorized
	}

	if err := b.stdb.SetPaused(paused); err != nil {
		return err
	}

	logger.Warnf("bridge paused=%v by %s", paused, caller)
	return nil
}

// TransferOwnership hands the owner role to a new identity. Owner-only.
func (b *Bridge) TransferOwnership(caller, newOwner ethcommon.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	owner, ok, err := b.stdb.GetOwner()
	if err != nil {
		return err
	}
	if !ok || owner != caller {
		return ErrNotAuthorized
	}

	if newOwner == (ethcommon.Address{}) {
		return ErrInvalidParameters
	}

	if err := b.stdb.SetOwner(newOwner); err != nil {
		return err
	}

	logger.Warnf("ownership transferred: %s -> %s", caller, newOwner)
	return nil
}
