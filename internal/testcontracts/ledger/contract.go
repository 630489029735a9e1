package ledger

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Ownership ledger test double: an openly mutable registry of vault records.

type Vault struct {
	Owner      interop.Hash160
	AssetClass interop.Hash160
	Collateral int
}

const vaultPrefix = 'v'

// SetVault creates or replaces a vault record. Test-only semantics: real
// ownership ledgers enforce their own rules for transfers and collateral.
func SetVault(id []byte, owner interop.Hash160, assetClass interop.Hash160, collateral int) {
	ctx := storage.GetContext()
	storage.Put(ctx, vaultKey(id), std.Serialize(Vault{
		Owner:      owner,
		AssetClass: assetClass,
		Collateral: collateral,
	}))
}

func VaultOwner(id []byte) interop.Hash160 {
	return getVault(id).Owner
}

func VaultAssetClass(id []byte) interop.Hash160 {
	return getVault(id).AssetClass
}

func VaultCollateral(id []byte) int {
	return getVault(id).Collateral
}

func getVault(id []byte) Vault {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, vaultKey(id))
	if data == nil {
		// Empty (not nil) hashes so length checks on the caller side work.
		return Vault{
			Owner:      interop.Hash160{},
			AssetClass: interop.Hash160{},
			Collateral: 0,
		}
	}

	return std.Deserialize(data.([]byte)).(Vault)
}

func vaultKey(id []byte) []byte {
	return append([]byte{vaultPrefix}, id...)
}
