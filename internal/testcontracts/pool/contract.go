package pool

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/stakewrap/stakewrap-contract/common"
)

// Staking pool test double. It holds stakes of the custodied token, pays the
// scripted pending amount of the primary reward (plus the converter-matched
// derived amount) on claim and reports auxiliary reward streams set up by
// tests.

const (
	custodiedTokenKey = 'c'
	primaryTokenKey   = 'r'
	derivedTokenKey   = 'd'
	converterKey      = 'n'

	stakedKey  = 's'
	pendingKey = 'p'

	auxListKey     = 'x'
	auxTokenPrefix = 'm'
)

// nolint:unused
func _deploy(data interface{}, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		custodiedToken interop.Hash160
		primaryToken   interop.Hash160
		derivedToken   interop.Hash160
		converter      interop.Hash160
	})

	ctx := storage.GetContext()
	storage.Put(ctx, custodiedTokenKey, args.custodiedToken)
	storage.Put(ctx, primaryTokenKey, args.primaryToken)
	storage.Put(ctx, derivedTokenKey, args.derivedToken)
	storage.Put(ctx, converterKey, args.converter)
}

// Stake pulls the amount from the calling contract's allowance and records it.
func Stake(amount int) {
	if amount <= 0 {
		panic("non-positive stake amount")
	}

	ctx := storage.GetContext()
	me := runtime.GetExecutingScriptHash()
	staker := runtime.GetCallingScriptHash()
	token := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)

	common.PullToken(token, staker, me, amount)
	storage.Put(ctx, stakedKey, common.GetInt(ctx, stakedKey)+amount)
}

// Withdraw returns the amount of the custodied token to the calling contract,
// optionally claiming pending rewards along the way.
func Withdraw(amount int, claim bool) {
	if amount <= 0 {
		panic("non-positive withdrawal amount")
	}

	ctx := storage.GetContext()
	staked := common.GetInt(ctx, stakedKey)
	if staked < amount {
		panic("not enough staked")
	}
	storage.Put(ctx, stakedKey, staked-amount)

	me := runtime.GetExecutingScriptHash()
	staker := runtime.GetCallingScriptHash()
	token := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	common.TransferToken(token, me, staker, amount, nil)

	if claim {
		payout(ctx, staker)
	}
}

// ClaimAll pays all pending rewards out to the account.
func ClaimAll(account interop.Hash160, _ bool) {
	ctx := storage.GetContext()
	payout(ctx, account)
}

// PendingEarned reports the primary reward amount the next claim would pay.
func PendingEarned(_ interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, pendingKey)
}

// SetPending scripts the primary reward amount of the next claim.
func SetPending(amount int) {
	ctx := storage.GetContext()
	storage.Put(ctx, pendingKey, amount)
}

// Staked reports the total staked custodied-token amount.
func Staked() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, stakedKey)
}

// AddAuxiliary registers an auxiliary reward stream reference paying the
// given token.
func AddAuxiliary(ref interop.Hash160, token interop.Hash160) {
	ctx := storage.GetContext()
	refs := getAuxList(ctx)
	refs = append(refs, ref)
	common.SetSerialized(ctx, auxListKey, refs)
	storage.Put(ctx, append([]byte{auxTokenPrefix}, ref...), token)
}

// AuxiliaryRewardCount returns the number of auxiliary reward streams.
func AuxiliaryRewardCount() int {
	ctx := storage.GetReadOnlyContext()
	return len(getAuxList(ctx))
}

// AuxiliaryReward returns the reference of the i-th auxiliary reward stream.
func AuxiliaryReward(i int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	refs := getAuxList(ctx)
	if i < 0 || i >= len(refs) {
		panic("auxiliary reward index out of range")
	}
	return interop.Hash160(refs[i])
}

// RewardTokenOf resolves the reward token paid by an auxiliary stream.
func RewardTokenOf(ref interop.Hash160) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	token := storage.Get(ctx, append([]byte{auxTokenPrefix}, ref...))
	if token == nil {
		panic("unknown auxiliary reward")
	}
	return token.(interop.Hash160)
}

// OnNEP17Payment accepts incoming token transfers.
func OnNEP17Payment(_ interop.Hash160, _ int, _ interface{}) {
}

// payout mints the scripted pending primary reward plus the converter-matched
// derived amount to the account, mirroring staking pools that co-issue a
// derived token with every primary payout.
func payout(ctx storage.Context, account interop.Hash160) {
	pending := common.GetInt(ctx, pendingKey)
	if pending <= 0 {
		return
	}
	storage.Put(ctx, pendingKey, 0)

	primary := storage.Get(ctx, primaryTokenKey).(interop.Hash160)
	contract.Call(primary, "mint", contract.All, account, pending)

	converter := storage.Get(ctx, converterKey).(interop.Hash160)
	derivedAmount := contract.Call(converter, "convert", contract.ReadOnly, pending).(int)
	if derivedAmount > 0 {
		derived := storage.Get(ctx, derivedTokenKey).(interop.Hash160)
		contract.Call(derived, "mint", contract.All, account, derivedAmount)
	}
}

func getAuxList(ctx storage.Context) [][]byte {
	data := storage.Get(ctx, auxListKey)
	if data != nil {
		return std.Deserialize(data.([]byte)).([][]byte)
	}

	return [][]byte{}
}
