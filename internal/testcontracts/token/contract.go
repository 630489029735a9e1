package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/stakewrap/stakewrap-contract/common"
)

// Fungible token test double with an open mint and an allowance extension.
// Not a product: it exists so the real contracts can be exercised against
// NEP-17-style transfer, approve and transferFrom semantics in tests.

const (
	supplyKey       = 's'
	accPrefix       = 'a'
	allowancePrefix = 'w'
)

func Symbol() string {
	return "TST"
}

func Decimals() int {
	return 8
}

func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, supplyKey)
}

func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, account)
}

// Mint issues tokens to anyone who asks. Test-only semantics.
func Mint(to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if amount <= 0 {
		panic("non-positive mint amount")
	}

	ctx := storage.GetContext()
	setBalance(ctx, to, getBalance(ctx, to)+amount)
	storage.Put(ctx, supplyKey, common.GetInt(ctx, supplyKey)+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	postTransfer(nil, to, amount, nil)
}

func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len || amount < 0 {
		return false
	}
	if !isUsableAddress(from) {
		return false
	}

	ctx := storage.GetContext()
	return move(ctx, from, to, amount, data)
}

// Approve lets the spender pull up to amount of the owner's tokens. The
// approval is authorized the same way a transfer is.
func Approve(owner, spender interop.Hash160, amount int) bool {
	if len(owner) != interop.Hash160Len || len(spender) != interop.Hash160Len || amount < 0 {
		return false
	}
	if !isUsableAddress(owner) {
		return false
	}

	ctx := storage.GetContext()
	storage.Put(ctx, allowanceKey(owner, spender), amount)
	return true
}

func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// TransferFrom spends the allowance granted by from to the calling contract.
func TransferFrom(from, to interop.Hash160, amount int, data interface{}) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len || amount < 0 {
		return false
	}

	ctx := storage.GetContext()
	spender := runtime.GetCallingScriptHash()
	key := allowanceKey(from, spender)
	allowed := common.GetInt(ctx, key)
	if allowed < amount {
		return false
	}

	storage.Put(ctx, key, allowed-amount)
	return move(ctx, from, to, amount, data)
}

func move(ctx storage.Context, from, to interop.Hash160, amount int, data interface{}) bool {
	balance := getBalance(ctx, from)
	if balance < amount {
		return false
	}

	setBalance(ctx, from, balance-amount)
	setBalance(ctx, to, getBalance(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)
	postTransfer(from, to, amount, data)
	return true
}

func postTransfer(from, to interop.Hash160, amount int, data interface{}) {
	if to == nil || management.GetContract(to) == nil {
		return
	}

	contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
}

func isUsableAddress(addr interop.Hash160) bool {
	if runtime.CheckWitness(addr) {
		return true
	}

	return common.BytesEqual(runtime.GetCallingScriptHash(), addr)
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, append([]byte{accPrefix}, account...))
}

func setBalance(ctx storage.Context, account interop.Hash160, amount int) {
	key := append([]byte{accPrefix}, account...)
	if amount == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, amount)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(append([]byte{allowancePrefix}, owner...), spender...)
}
