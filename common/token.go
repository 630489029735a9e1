package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

// TokenBalance returns the fungible token balance of the given account.
func TokenBalance(token, account interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadOnly, account).(int)
}

// TransferToken moves tokens between accounts and panics if the token
// contract refuses the transfer. The transfer is authorized either by a
// witness of the sender carried by the invocation or by the calling contract
// being the sender itself.
func TransferToken(token, from, to interop.Hash160, amount int, data interface{}) {
	ok := contract.Call(token, "transfer", contract.All, from, to, amount, data).(bool)
	if !ok {
		panic("token transfer failed")
	}
}

// ApproveToken lets the spender pull up to amount of the owner's tokens via
// transferFrom. The token is expected to implement the allowance extension
// and to authorize the approval the same way it authorizes transfers.
func ApproveToken(token, owner, spender interop.Hash160, amount int) {
	ok := contract.Call(token, "approve", contract.All, owner, spender, amount).(bool)
	if !ok {
		panic("token approval failed")
	}
}

// PullToken pulls tokens from an account that granted the calling contract an
// allowance beforehand. Panics if the token contract refuses the pull.
func PullToken(token, from, to interop.Hash160, amount int) {
	ok := contract.Call(token, "transferFrom", contract.All, from, to, amount, nil).(bool)
	if !ok {
		panic("token pull failed")
	}
}
