package reenter

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Reentrancy attacker test double: when it receives a token payment it turns
// around and calls claim on the configured target, modeling a malicious
// reward token recipient re-entering an in-flight claim.

const targetKey = 't'

// SetTarget configures the contract whose claim method is re-entered.
func SetTarget(target interop.Hash160) {
	ctx := storage.GetContext()
	storage.Put(ctx, targetKey, target)
}

// ClearTarget disarms the contract.
func ClearTarget() {
	ctx := storage.GetContext()
	storage.Delete(ctx, targetKey)
}

// OnNEP17Payment re-enters the target's claim path.
func OnNEP17Payment(_ interop.Hash160, _ int, _ interface{}) {
	ctx := storage.GetReadOnlyContext()
	target := storage.Get(ctx, targetKey)
	if target == nil {
		return
	}

	me := runtime.GetExecutingScriptHash()
	contract.Call(target.(interop.Hash160), "claim", contract.All, me)
}
