package wrapper

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/stakewrap/stakewrap-contract/common"
)

type (
	// Reward describes a single distributed reward token. Rewards are kept
	// in an append-only list; per-account settlement state lives in
	// Snapshot records stored separately.
	Reward struct {
		// Token is the reward token contract.
		Token interop.Hash160
		// Pool is the contract the reward is emitted by. Empty for the
		// derived reward until a dedicated source is discovered.
		Pool interop.Hash160
		// Integral is the cumulative reward per managed-supply unit,
		// scaled by common.RewardScale(). Never decreases.
		Integral int
		// Remaining is the reward token balance observed after the last
		// checkpoint, used to compute payout deltas.
		Remaining int
	}

	// Snapshot is the per-account settlement state of one reward.
	Snapshot struct {
		// Integral is the reward integral the account was settled up to.
		Integral int
		// Claimable is the accrued but not yet claimed amount.
		Claimable int
	}

	// Earning is a projection of a pending reward payout.
	Earning struct {
		Token  interop.Hash160
		Amount int
	}
)

const (
	custodiedTokenKey  = 'c'
	stakingPoolKey     = 'p'
	ownershipLedgerKey = 'l'
	converterKey       = 'n'
	operatorKey        = 'o'

	storedBalanceKey = 's'
	managedSupplyKey = 'm'

	loanFeeFactorKey = 'f'
	loansEnabledKey  = 'e'
	claimGuardKey    = 'g'

	rewardsKey        = 'r'
	rewardIndexPrefix = 'x'
	snapshotPrefix    = 'a'
	vaultsPrefix      = 'w'

	primaryRewardIndex = 0
	derivedRewardIndex = 1
)

// LoanAck is the value the onLoan callback of a flash borrower must return to
// acknowledge the loan terms. Any other return value aborts the loan.
const LoanAck = "STAKEWRAP_FLASH_LOAN"

// nolint:unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		custodiedToken  interop.Hash160
		stakingPool     interop.Hash160
		ownershipLedger interop.Hash160
		converter       interop.Hash160
		primaryReward   interop.Hash160
		derivedReward   interop.Hash160
		operator        interop.Hash160
	})

	if len(args.custodiedToken) != interop.Hash160Len ||
		len(args.stakingPool) != interop.Hash160Len ||
		len(args.ownershipLedger) != interop.Hash160Len ||
		len(args.converter) != interop.Hash160Len ||
		len(args.primaryReward) != interop.Hash160Len ||
		len(args.derivedReward) != interop.Hash160Len ||
		len(args.operator) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, custodiedTokenKey, args.custodiedToken)
	storage.Put(ctx, stakingPoolKey, args.stakingPool)
	storage.Put(ctx, ownershipLedgerKey, args.ownershipLedger)
	storage.Put(ctx, converterKey, args.converter)
	storage.Put(ctx, operatorKey, args.operator)

	storage.Put(ctx, loanFeeFactorKey, 0)
	storage.Put(ctx, loansEnabledKey, true)

	// The primary reward always occupies index 0 and the derived reward
	// index 1 without a bound source. Checkpoint and projection logic
	// relies on this order.
	registerReward(ctx, args.primaryReward, args.stakingPool)
	registerReward(ctx, args.derivedReward, interop.Hash160{})

	runtime.Log("wrapper contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("wrapper contract updated")
}

// Deposit accepts the given amount of the custodied token on behalf of the
// account and stakes it in the external pool. Only the configured operator
// can invoke it. Any custodied-token balance already sitting on the contract
// (donations, flash-loan fees) is absorbed first and only the shortfall is
// pulled from the operator.
//
// Produces Deposit notification.
func Deposit(account interop.Hash160, amount int) {
	ctx := storage.GetContext()
	operator := storage.Get(ctx, operatorKey).(interop.Hash160)
	if !common.CalledByEntity(operator) {
		panic("deposit is restricted to the operator")
	}
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if amount <= 0 {
		panic("non-positive deposit amount")
	}

	// Rewards must be settled against the pre-deposit balance.
	checkpoint(ctx, account, false)

	me := runtime.GetExecutingScriptHash()
	token := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	pool := storage.Get(ctx, stakingPoolKey).(interop.Hash160)

	// The stored balance is fully staked between invocations, so any
	// local balance is unaccounted surplus.
	surplus := common.TokenBalance(token, me)
	pull := amount - surplus
	if pull < 0 {
		pull = 0
	}
	if pull > 0 {
		common.TransferToken(token, operator, me, pull, nil)
	}

	storage.Put(ctx, storedBalanceKey, common.GetInt(ctx, storedBalanceKey)+amount)
	storage.Put(ctx, managedSupplyKey, common.GetInt(ctx, managedSupplyKey)+amount)

	common.ApproveToken(token, me, pool, amount)
	contract.Call(pool, "stake", contract.All, amount)

	runtime.Notify("Deposit", account, amount)
}

// Withdraw unstakes the given amount from the external pool and transfers it
// to the account. Only the configured operator can invoke it.
//
// Produces Withdraw notification.
func Withdraw(account interop.Hash160, amount int) {
	ctx := storage.GetContext()
	operator := storage.Get(ctx, operatorKey).(interop.Hash160)
	if !common.CalledByEntity(operator) {
		panic("withdraw is restricted to the operator")
	}
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if amount <= 0 {
		panic("non-positive withdrawal amount")
	}

	checkpoint(ctx, account, false)

	stored := common.GetInt(ctx, storedBalanceKey)
	if stored < amount {
		panic("insufficient stored balance")
	}
	storage.Put(ctx, storedBalanceKey, stored-amount)
	storage.Put(ctx, managedSupplyKey, common.GetInt(ctx, managedSupplyKey)-amount)

	me := runtime.GetExecutingScriptHash()
	token := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	pool := storage.Get(ctx, stakingPoolKey).(interop.Hash160)

	contract.Call(pool, "withdraw", contract.All, amount, false)
	common.TransferToken(token, me, account, amount, nil)

	runtime.Notify("Withdraw", account, amount)
}

// Checkpoint settles all reward accumulators and credits the account's
// accrued rewards as claimable without paying them out. Open to any caller.
func Checkpoint(account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	ctx := storage.GetContext()
	checkpoint(ctx, account, false)
}

// Claim settles all reward accumulators and pays every accrued reward out to
// the account. Open to any caller, rewards always go to the account itself.
//
// Produces RewardPaid notifications.
func Claim(account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	ctx := storage.GetContext()
	common.EnterGuard(ctx, claimGuardKey)
	checkpoint(ctx, account, true)
	common.ExitGuard(ctx, claimGuardKey)
}

// RegisterReward appends a new reward token with an optional emitting pool.
// Registration is idempotent: a token that is already registered keeps its
// index. It can be invoked only by committee.
//
// Produces RewardAdded notification for new tokens.
func RegisterReward(token interop.Hash160, pool interop.Hash160) int {
	common.CheckCommitteeWitness()
	if len(token) != interop.Hash160Len {
		panic("incorrect length of token script hash")
	}

	ctx := storage.GetContext()
	return registerReward(ctx, token, pool)
}

// DiscoverRewards walks the auxiliary reward streams reported by the staking
// pool, binds the derived reward's source if it was not bound yet and
// registers reward tokens this contract has not seen before. Repeated calls
// are idempotent. Open to any caller.
func DiscoverRewards() {
	ctx := storage.GetContext()
	pool := storage.Get(ctx, stakingPoolKey).(interop.Hash160)

	n := contract.Call(pool, "auxiliaryRewardCount", contract.ReadOnly).(int)
	for i := 0; i < n; i++ {
		ref := contract.Call(pool, "auxiliaryReward", contract.ReadOnly, i).(interop.Hash160)
		token := contract.Call(pool, "rewardTokenOf", contract.ReadOnly, ref).(interop.Hash160)

		rewards := getRewards(ctx)
		derived := rewards[derivedRewardIndex]
		if common.BytesEqual(token, derived.Token) {
			if len(derived.Pool) == 0 {
				derived.Pool = ref
				rewards[derivedRewardIndex] = derived
				putRewards(ctx, rewards)
			}
			continue
		}

		registerReward(ctx, token, ref)
	}
}

// RegisterVault attaches an external vault to its current owner's set after
// checking with the ownership ledger that the vault exists and holds the
// custodied asset class. Open to any caller.
//
// Produces VaultRegistered notification.
func RegisterVault(vaultID []byte) {
	ctx := storage.GetContext()
	ledger := storage.Get(ctx, ownershipLedgerKey).(interop.Hash160)

	owner := contract.Call(ledger, "vaultOwner", contract.ReadOnly, vaultID).(interop.Hash160)
	if len(owner) != interop.Hash160Len {
		panic("vault has no resolvable owner")
	}

	class := contract.Call(ledger, "vaultAssetClass", contract.ReadOnly, vaultID).(interop.Hash160)
	custodied := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	if !common.BytesEqual(class, custodied) {
		panic("vault asset class mismatch")
	}

	key := vaultKey(owner)
	vaults := common.GetList(ctx, key)
	for i := 0; i < len(vaults); i++ {
		if common.BytesEqual(vaults[i], vaultID) {
			panic("vault already registered")
		}
	}
	vaults = append(vaults, vaultID)
	common.SetSerialized(ctx, key, vaults)

	runtime.Notify("VaultRegistered", owner, vaultID)
}

// DeregisterVault removes a vault from the account's set. It is a cleanup
// operation for vaults whose external ownership has already moved away from
// the account; a vault still attributed to the account cannot be removed.
// Open to any caller.
//
// Produces VaultDeregistered notification.
func DeregisterVault(vaultID []byte, account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}

	ctx := storage.GetContext()
	ledger := storage.Get(ctx, ownershipLedgerKey).(interop.Hash160)

	owner := contract.Call(ledger, "vaultOwner", contract.ReadOnly, vaultID).(interop.Hash160)
	if common.BytesEqual(owner, account) {
		panic("vault is still attributed to the account")
	}

	key := vaultKey(account)
	vaults := common.GetList(ctx, key)
	index := -1
	for i := 0; i < len(vaults); i++ {
		if common.BytesEqual(vaults[i], vaultID) {
			index = i
			break
		}
	}
	if index < 0 {
		panic("vault is not registered for the account")
	}

	last := len(vaults) - 1
	vaults[index] = vaults[last]
	vaults = vaults[:last]
	common.SetSerialized(ctx, key, vaults)

	runtime.Notify("VaultDeregistered", account, vaultID)
}

// AggregatedBalance sums the collateral of every vault in the account's set
// that the ownership ledger still attributes to the account. Stale entries
// contribute zero.
func AggregatedBalance(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return aggregatedBalance(ctx, account)
}

// VaultsOf returns the registered vault set of the account, including stale
// entries whose ownership has moved away.
func VaultsOf(account interop.Hash160) [][]byte {
	ctx := storage.GetReadOnlyContext()
	return common.GetList(ctx, vaultKey(account))
}

// Earned projects the amount Claim would currently pay the account for every
// registered reward, without mutating state. Undistributed balance deltas and
// the pool's reported pending earnings are included; the derived reward is
// projected through the converter exactly like the claim path.
func Earned(account interop.Hash160) []Earning {
	ctx := storage.GetReadOnlyContext()
	me := runtime.GetExecutingScriptHash()
	pool := storage.Get(ctx, stakingPoolKey).(interop.Hash160)
	supply := common.GetInt(ctx, managedSupplyKey)
	accountBalance := aggregatedBalance(ctx, account)
	scale := common.RewardScale()

	pending := contract.Call(pool, "pendingEarned", contract.ReadOnly, me).(int)

	rewards := getRewards(ctx)
	earnings := []Earning{}
	primaryProjected := 0
	for i := 0; i < len(rewards); i++ {
		r := rewards[i]
		accrued := 0
		if i == derivedRewardIndex {
			if primaryProjected > 0 {
				accrued = convert(ctx, primaryProjected)
			}
		} else {
			balance := common.TokenBalance(r.Token, me)
			if balance > r.Remaining {
				accrued = balance - r.Remaining
			}
			if i == primaryRewardIndex {
				accrued += pending
				primaryProjected = accrued
			}
		}

		integral := r.Integral
		if supply > 0 && accrued > 0 {
			integral += accrued * scale / supply
		}

		snap := getSnapshot(ctx, i, account)
		amount := snap.Claimable + accountBalance*(integral-snap.Integral)/scale
		earnings = append(earnings, Earning{Token: r.Token, Amount: amount})
	}

	return earnings
}

// RewardCount returns the number of registered reward tokens.
func RewardCount() int {
	ctx := storage.GetReadOnlyContext()
	return len(getRewards(ctx))
}

// RewardAt returns the reward record at the given registration index.
func RewardAt(index int) Reward {
	ctx := storage.GetReadOnlyContext()
	rewards := getRewards(ctx)
	if index < 0 || index >= len(rewards) {
		panic("reward index out of range")
	}
	return rewards[index]
}

// CustodiedToken returns the token contract held in custody.
func CustodiedToken() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
}

// TotalManaged returns the total custodied-token amount under management,
// the denominator of reward distribution.
func TotalManaged() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, managedSupplyKey)
}

// StoredBalance returns the custody bookkeeping balance: the sum of net
// deposits minus net withdrawals.
func StoredBalance() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, storedBalanceKey)
}

// MaxLoan returns the maximum flash-loan principal for the token: the stored
// custody balance for the custodied token, zero for anything else or while
// the facility is disabled.
func MaxLoan(token interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	custodied := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	if !common.BytesEqual(token, custodied) {
		return 0
	}
	if !storage.Get(ctx, loansEnabledKey).(bool) {
		return 0
	}
	return common.GetInt(ctx, storedBalanceKey)
}

// LoanFee quotes the flash-loan fee for borrowing the given amount. It fails
// for any token other than the custodied one and while the facility is
// disabled.
func LoanFee(token interop.Hash160, amount int) int {
	ctx := storage.GetReadOnlyContext()
	custodied := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	if !common.BytesEqual(token, custodied) {
		panic("unknown loan asset")
	}
	return loanFee(ctx, amount)
}

// Borrow issues a flash loan of the custodied token to the receiver contract.
// The principal is unstaked and transferred to the receiver, then the
// receiver's onLoan(initiator, token, amount, fee, data) callback runs and
// must return LoanAck. Afterwards principal plus fee are reclaimed: whatever
// the receiver already sent back is counted and the shortfall is pulled via
// the token's allowance extension. The principal is staked back, the fee
// remains on the contract as unaccounted surplus. Any failure aborts the
// entire invocation, including the issuance.
//
// Produces Loan notification.
func Borrow(receiver interop.Hash160, token interop.Hash160, amount int, data []byte) bool {
	if len(receiver) != interop.Hash160Len {
		panic("incorrect length of receiver script hash")
	}

	ctx := storage.GetContext()
	custodied := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	if !common.BytesEqual(token, custodied) {
		panic("unknown loan asset")
	}
	if amount <= 0 {
		panic("non-positive loan amount")
	}

	fee := loanFee(ctx, amount)

	stored := common.GetInt(ctx, storedBalanceKey)
	if amount > stored {
		panic("loan exceeds custody balance")
	}

	checkpoint(ctx, receiver, false)

	me := runtime.GetExecutingScriptHash()
	pool := storage.Get(ctx, stakingPoolKey).(interop.Hash160)
	initiator := runtime.GetCallingScriptHash()

	heldBefore := common.TokenBalance(custodied, me)

	contract.Call(pool, "withdraw", contract.All, amount, false)
	common.TransferToken(custodied, me, receiver, amount, nil)

	ack := contract.Call(receiver, "onLoan", contract.All,
		initiator, custodied, amount, fee, data)
	if ack.(string) != LoanAck {
		panic("loan not acknowledged by receiver")
	}

	owed := amount + fee
	repaid := common.TokenBalance(custodied, me) - heldBefore
	if repaid < owed {
		common.PullToken(custodied, receiver, me, owed-repaid)
	}

	common.ApproveToken(custodied, me, pool, amount)
	contract.Call(pool, "stake", contract.All, amount)

	runtime.Notify("Loan", receiver, custodied, amount, fee)
	return true
}

// LoansEnabled tells whether the flash-loan facility is live.
func LoansEnabled() bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, loansEnabledKey).(bool)
}

// SetLoanFee sets the flash-loan fee factor, an 18-decimal fixed-point rate
// applied to the principal. It can be invoked only by committee.
func SetLoanFee(factor int) {
	common.CheckCommitteeWitness()
	if factor < 0 {
		panic("negative fee factor")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, loanFeeFactorKey, factor)
}

// SetLoansEnabled switches the flash-loan facility on or off. While disabled,
// quoting and borrowing fail. It can be invoked only by committee.
func SetLoansEnabled(enabled bool) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	storage.Put(ctx, loansEnabledKey, enabled)
}

// SweepForeign transfers the full balance of a token that is not the
// custodied asset to the given account. The custodied asset itself must go
// through Withdraw. It can be invoked only by committee.
func SweepForeign(token interop.Hash160, to interop.Hash160) {
	common.CheckCommitteeWitness()
	if len(to) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}

	ctx := storage.GetContext()
	custodied := storage.Get(ctx, custodiedTokenKey).(interop.Hash160)
	if common.BytesEqual(token, custodied) {
		panic("cannot sweep the custodied asset")
	}

	me := runtime.GetExecutingScriptHash()
	balance := common.TokenBalance(token, me)
	if balance > 0 {
		common.TransferToken(token, me, to, balance, nil)
	}
}

// OnNEP17Payment accepts incoming token transfers: unstaked principal,
// pulled deposits, reward payouts and flash-loan repayments all arrive here.
func OnNEP17Payment(_ interop.Hash160, _ int, _ interface{}) {
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkpoint settles every registered reward in registration order against
// the pre-operation state: pool payouts are pulled in, balance deltas are
// folded into the integrals and the account's share is credited (or paid out
// when claim is set). The account's share is computed from its aggregated
// vault balance before the enclosing operation mutates anything.
func checkpoint(ctx storage.Context, account interop.Hash160, claim bool) {
	me := runtime.GetExecutingScriptHash()
	pool := storage.Get(ctx, stakingPoolKey).(interop.Hash160)
	supply := common.GetInt(ctx, managedSupplyKey)
	scale := common.RewardScale()

	// The pool pays out everything it owes in one call; per-reward deltas
	// are then derived from balance changes.
	contract.Call(pool, "claimAll", contract.All, me, true)

	skipAccount := common.BytesEqual(account, me)
	accountBalance := 0
	if !skipAccount {
		accountBalance = aggregatedBalance(ctx, account)
	}

	rewards := getRewards(ctx)
	primaryDelta := 0
	for i := 0; i < len(rewards); i++ {
		r := rewards[i]
		balance := common.TokenBalance(r.Token, me)

		accrued := 0
		if i == derivedRewardIndex {
			// The derived reward is not measured from its own balance:
			// its accrual is the converted primary accrual.
			if primaryDelta > 0 {
				accrued = convert(ctx, primaryDelta)
			}
		} else if balance > r.Remaining {
			accrued = balance - r.Remaining
		}
		if i == primaryRewardIndex {
			primaryDelta = accrued
		}

		if supply > 0 && accrued > 0 {
			r.Integral += accrued * scale / supply
		}

		if !skipAccount {
			snap := getSnapshot(ctx, i, account)
			if claim || snap.Integral < r.Integral {
				delta := accountBalance * (r.Integral - snap.Integral) / scale
				if claim {
					payable := snap.Claimable + delta
					snap.Claimable = 0
					if payable > 0 {
						common.TransferToken(r.Token, me, account, payable, nil)
						balance -= payable
						runtime.Notify("RewardPaid", account, r.Token, payable)
					}
				} else {
					snap.Claimable += delta
				}
				snap.Integral = r.Integral
				putSnapshot(ctx, i, account, snap)
			}
		}

		r.Remaining = balance
		rewards[i] = r
	}

	putRewards(ctx, rewards)
}

func aggregatedBalance(ctx storage.Context, account interop.Hash160) int {
	ledger := storage.Get(ctx, ownershipLedgerKey).(interop.Hash160)
	vaults := common.GetList(ctx, vaultKey(account))

	total := 0
	for i := 0; i < len(vaults); i++ {
		owner := contract.Call(ledger, "vaultOwner", contract.ReadOnly, vaults[i]).(interop.Hash160)
		if !common.BytesEqual(owner, account) {
			// Ownership moved away without deregistration, the entry
			// counts as zero.
			continue
		}
		total += contract.Call(ledger, "vaultCollateral", contract.ReadOnly, vaults[i]).(int)
	}

	return total
}

func registerReward(ctx storage.Context, token interop.Hash160, pool interop.Hash160) int {
	indexKey := append([]byte{rewardIndexPrefix}, token...)
	stored := storage.Get(ctx, indexKey)
	if stored != nil {
		return stored.(int) - 1
	}

	rewards := getRewards(ctx)
	index := len(rewards)
	rewards = append(rewards, Reward{
		Token:     token,
		Pool:      pool,
		Integral:  0,
		Remaining: 0,
	})
	putRewards(ctx, rewards)
	storage.Put(ctx, indexKey, index+1)

	runtime.Notify("RewardAdded", token, index)
	return index
}

func loanFee(ctx storage.Context, amount int) int {
	if !storage.Get(ctx, loansEnabledKey).(bool) {
		panic("flash loans are disabled")
	}

	factor := common.GetInt(ctx, loanFeeFactorKey)
	return common.FeeMul(amount, factor)
}

func convert(ctx storage.Context, primaryAmount int) int {
	converter := storage.Get(ctx, converterKey).(interop.Hash160)
	return contract.Call(converter, "convert", contract.ReadOnly, primaryAmount).(int)
}

func getRewards(ctx storage.Context) []Reward {
	data := storage.Get(ctx, rewardsKey)
	if data != nil {
		return std.Deserialize(data.([]byte)).([]Reward)
	}

	return []Reward{}
}

func putRewards(ctx storage.Context, rewards []Reward) {
	common.SetSerialized(ctx, rewardsKey, rewards)
}

func getSnapshot(ctx storage.Context, index int, account interop.Hash160) Snapshot {
	data := storage.Get(ctx, snapshotKey(index, account))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Snapshot)
	}

	return Snapshot{}
}

func putSnapshot(ctx storage.Context, index int, account interop.Hash160, snap Snapshot) {
	common.SetSerialized(ctx, snapshotKey(index, account), snap)
}

func snapshotKey(index int, account interop.Hash160) []byte {
	return append([]byte{snapshotPrefix, byte(index)}, account...)
}

func vaultKey(account interop.Hash160) []byte {
	return append([]byte{vaultsPrefix}, account...)
}
