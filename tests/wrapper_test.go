package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stakewrap/stakewrap-contract/common"
	"github.com/stretchr/testify/require"
)

func TestWrapperVersion(t *testing.T) {
	env := newWrapperEnv(t)
	env.committee().Invoke(t, common.Version, "version")
	env.committee().Invoke(t, env.custodied.BytesBE(), "custodiedToken")
}

func TestWrapperDepositWithdraw(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()
	env.fundOperator(t, 1000)

	env.committee().InvokeFail(t, "restricted to the operator", "deposit", user, 100)
	env.asOperator().InvokeFail(t, "non-positive deposit amount", "deposit", user, 0)

	env.deposit(t, user, 400)
	require.EqualValues(t, 400, env.storedBalance(t))
	require.EqualValues(t, 400, env.totalManaged(t))
	require.EqualValues(t, 400, env.staked(t))
	require.EqualValues(t, 600, env.balanceOf(t, env.custodied, env.operator.ScriptHash()))
	require.EqualValues(t, 0, env.balanceOf(t, env.custodied, env.wrapper))

	env.withdraw(t, user, 150)
	require.EqualValues(t, 250, env.storedBalance(t))
	require.EqualValues(t, 250, env.totalManaged(t))
	require.EqualValues(t, 250, env.staked(t))
	require.EqualValues(t, 150, env.balanceOf(t, env.custodied, user))

	env.asOperator().InvokeFail(t, "insufficient stored balance", "withdraw", user, 300)
	env.committee().InvokeFail(t, "restricted to the operator", "withdraw", user, 10)
	env.asOperator().InvokeFail(t, "non-positive withdrawal amount", "withdraw", user, 0)

	env.deposit(t, user, 100)
	require.EqualValues(t, 350, env.storedBalance(t))
	require.EqualValues(t, 350, env.staked(t))
}

func TestWrapperDepositAbsorbsDonations(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()
	env.fundOperator(t, 500)

	// A donation sits on the contract; the next deposit pulls the shortfall.
	env.mint(t, env.custodied, env.wrapper, 30)
	env.deposit(t, user, 70)
	require.EqualValues(t, 460, env.balanceOf(t, env.custodied, env.operator.ScriptHash()))
	require.EqualValues(t, 70, env.storedBalance(t))
	require.EqualValues(t, 70, env.staked(t))
	require.EqualValues(t, 0, env.balanceOf(t, env.custodied, env.wrapper))

	// A donation exceeding the deposit covers it in full.
	env.mint(t, env.custodied, env.wrapper, 50)
	env.deposit(t, user, 20)
	require.EqualValues(t, 460, env.balanceOf(t, env.custodied, env.operator.ScriptHash()))
	require.EqualValues(t, 90, env.storedBalance(t))
	require.EqualValues(t, 90, env.staked(t))
	require.EqualValues(t, 30, env.balanceOf(t, env.custodied, env.wrapper))
}

func TestWrapperRewardStreaming(t *testing.T) {
	env := newWrapperEnv(t)
	userA := env.e.NewAccount(t).ScriptHash()
	userB := env.e.NewAccount(t).ScriptHash()

	env.setVault(t, []byte{1}, userA, env.custodied, 100)
	env.committee().Invoke(t, stackitem.Null{}, "registerVault", []byte{1})
	env.setVault(t, []byte{2}, userB, env.custodied, 300)
	env.committee().Invoke(t, stackitem.Null{}, "registerVault", []byte{2})

	env.fundOperator(t, 400)
	env.deposit(t, userA, 100)
	env.deposit(t, userB, 300)

	// The pool owes 100 primary; the converter maps 100 -> 90 derived.
	env.setPending(t, 100)

	earnedA := env.earned(t, userA)
	require.EqualValues(t, 25, earnedA[env.primary])
	require.EqualValues(t, 22, earnedA[env.derived])

	env.committee().Invoke(t, stackitem.Null{}, "claim", userA)
	require.EqualValues(t, 25, env.balanceOf(t, env.primary, userA))
	require.EqualValues(t, 22, env.balanceOf(t, env.derived, userA))

	integralAfterClaim, remaining := env.rewardState(t, 0)
	require.EqualValues(t, 75, remaining)

	earnedA = env.earned(t, userA)
	require.EqualValues(t, 0, earnedA[env.primary])
	require.EqualValues(t, 0, earnedA[env.derived])

	earnedB := env.earned(t, userB)
	require.EqualValues(t, 75, earnedB[env.primary])
	require.EqualValues(t, 67, earnedB[env.derived])

	env.committee().Invoke(t, stackitem.Null{}, "claim", userB)
	require.EqualValues(t, 75, env.balanceOf(t, env.primary, userB))
	require.EqualValues(t, 67, env.balanceOf(t, env.derived, userB))

	// Rounding dust stays on the contract for later distribution.
	_, remaining = env.rewardState(t, 0)
	require.EqualValues(t, 0, remaining)
	_, remaining = env.rewardState(t, 1)
	require.EqualValues(t, 1, remaining)

	// A checkpoint with nothing accrued leaves the integral untouched.
	env.committee().Invoke(t, stackitem.Null{}, "checkpoint", userA)
	integral, _ := env.rewardState(t, 0)
	require.Zero(t, integral.Cmp(integralAfterClaim))

	// New accruals only ever increase it.
	env.setPending(t, 40)
	env.committee().Invoke(t, stackitem.Null{}, "checkpoint", userA)
	integral, _ = env.rewardState(t, 0)
	require.Positive(t, integral.Cmp(integralAfterClaim))

	earnedA = env.earned(t, userA)
	require.EqualValues(t, 10, earnedA[env.primary])
	require.EqualValues(t, 9, earnedA[env.derived])

	env.committee().Invoke(t, stackitem.Null{}, "claim", userA)
	require.EqualValues(t, 35, env.balanceOf(t, env.primary, userA))
	require.EqualValues(t, 31, env.balanceOf(t, env.derived, userA))
}

func TestWrapperEarnedMatchesClaimOnDonatedRewards(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()

	env.setVault(t, []byte{1}, user, env.custodied, 100)
	env.committee().Invoke(t, stackitem.Null{}, "registerVault", []byte{1})
	env.fundOperator(t, 100)
	env.deposit(t, user, 100)

	// Reward tokens arriving outside the pool's claim path are distributed
	// too. The derived accrual always follows the converted primary delta,
	// so the matching derived amount is convert(60) = 56.
	env.mint(t, env.primary, env.wrapper, 60)
	env.mint(t, env.derived, env.wrapper, 56)

	earned := env.earned(t, user)
	require.EqualValues(t, 60, earned[env.primary])
	require.EqualValues(t, 56, earned[env.derived])

	env.committee().Invoke(t, stackitem.Null{}, "claim", user)
	require.EqualValues(t, 60, env.balanceOf(t, env.primary, user))
	require.EqualValues(t, 56, env.balanceOf(t, env.derived, user))
}

func TestWrapperZeroSupplyCheckpoint(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()

	env.setPending(t, 10)
	env.committee().Invoke(t, stackitem.Null{}, "checkpoint", user)

	integral, remaining := env.rewardState(t, 0)
	require.Zero(t, integral.Sign())
	require.EqualValues(t, 10, remaining)

	integral, remaining = env.rewardState(t, 1)
	require.Zero(t, integral.Sign())
	require.EqualValues(t, 9, remaining)

	earned := env.earned(t, user)
	require.EqualValues(t, 0, earned[env.primary])
	require.EqualValues(t, 0, earned[env.derived])
}

func TestWrapperDiscoverRewards(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()

	auxToken := deployTokenInstance(t, env.e, "Aux Reward Token")
	auxRef := util.Uint160{0xaa}
	derivedRef := util.Uint160{0xbb}

	poolInv := env.e.CommitteeInvoker(env.pool)
	poolInv.Invoke(t, stackitem.Null{}, "addAuxiliary", derivedRef, env.derived)
	poolInv.Invoke(t, stackitem.Null{}, "addAuxiliary", auxRef, auxToken)

	env.committee().Invoke(t, 2, "rewardCount")

	env.committee().Invoke(t, stackitem.Null{}, "discoverRewards")
	env.committee().Invoke(t, 3, "rewardCount")

	// The derived reward got its source bound instead of a new entry.
	res, err := env.committee().TestInvoke(t, "rewardAt", 1)
	require.NoError(t, err)
	boundRef, err := res.Top().Array()[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, derivedRef.BytesBE(), boundRef)

	// Discovery and registration are idempotent.
	env.committee().Invoke(t, stackitem.Null{}, "discoverRewards")
	env.committee().Invoke(t, 3, "rewardCount")
	env.committee().Invoke(t, 0, "registerReward", env.primary, env.pool)
	env.committee().Invoke(t, 2, "registerReward", auxToken, auxRef)

	userInv := env.e.NewInvoker(env.wrapper, env.e.NewAccount(t))
	userInv.InvokeFail(t, common.ErrCommitteeWitnessFailed, "registerReward", auxToken, auxRef)

	// The discovered token streams like any other reward.
	env.setVault(t, []byte{1}, user, env.custodied, 100)
	env.committee().Invoke(t, stackitem.Null{}, "registerVault", []byte{1})
	env.fundOperator(t, 100)
	env.deposit(t, user, 100)

	env.mint(t, auxToken, env.wrapper, 40)
	env.committee().Invoke(t, stackitem.Null{}, "claim", user)
	require.EqualValues(t, 40, env.balanceOf(t, auxToken, user))
}

func TestWrapperVaultRegistry(t *testing.T) {
	env := newWrapperEnv(t)
	userA := env.e.NewAccount(t).ScriptHash()
	userB := env.e.NewAccount(t).ScriptHash()
	c := env.committee()

	c.InvokeFail(t, "no resolvable owner", "registerVault", []byte{9})

	env.setVault(t, []byte{2}, userA, env.primary, 10)
	c.InvokeFail(t, "asset class mismatch", "registerVault", []byte{2})

	env.setVault(t, []byte{1}, userA, env.custodied, 100)
	c.Invoke(t, stackitem.Null{}, "registerVault", []byte{1})
	c.InvokeFail(t, "already registered", "registerVault", []byte{1})

	c.Invoke(t, 100, "aggregatedBalance", userA)
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{stackitem.Make([]byte{1})}),
		"vaultsOf", userA)

	// External ownership moves away without deregistration: the stale entry
	// contributes zero for the old owner and nothing for the new one, who
	// never registered it.
	env.setVault(t, []byte{1}, userB, env.custodied, 100)
	c.Invoke(t, 0, "aggregatedBalance", userA)
	c.Invoke(t, 0, "aggregatedBalance", userB)

	// Cleanup of the stale entry is allowed, removing a live one is not.
	c.InvokeFail(t, "still attributed", "deregisterVault", []byte{1}, userB)
	env.setVault(t, []byte{3}, userA, env.custodied, 5)
	c.Invoke(t, stackitem.Null{}, "registerVault", []byte{3})
	c.InvokeFail(t, "still attributed", "deregisterVault", []byte{3}, userA)

	c.Invoke(t, stackitem.Null{}, "deregisterVault", []byte{1}, userA)
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{stackitem.Make([]byte{3})}),
		"vaultsOf", userA)
	c.InvokeFail(t, "not registered", "deregisterVault", []byte{1}, userA)
}

func TestWrapperClaimReentrancyGuard(t *testing.T) {
	env := newWrapperEnv(t)

	reenter := compileNamed(t, env.e, reenterPath, "")
	env.e.DeployContract(t, reenter, nil)
	env.e.CommitteeInvoker(reenter.Hash).Invoke(t, stackitem.Null{}, "setTarget", env.wrapper)

	env.setVault(t, []byte{1}, reenter.Hash, env.custodied, 100)
	env.committee().Invoke(t, stackitem.Null{}, "registerVault", []byte{1})
	env.fundOperator(t, 100)
	env.deposit(t, reenter.Hash, 100)

	env.setPending(t, 50)
	env.committee().InvokeFail(t, common.ErrReentrantCall, "claim", reenter.Hash)

	// The guard is scoped to one invocation: a fresh claim still works once
	// the recipient stops re-entering.
	env.e.CommitteeInvoker(reenter.Hash).Invoke(t, stackitem.Null{}, "clearTarget")
	env.committee().Invoke(t, stackitem.Null{}, "claim", reenter.Hash)
	require.EqualValues(t, 50, env.balanceOf(t, env.primary, reenter.Hash))
}

func TestWrapperFlashLoan(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()
	env.fundOperator(t, 512)
	env.deposit(t, user, 500)

	borrower := compileNamed(t, env.e, borrowerPath, "")
	env.e.DeployContract(t, borrower, nil)

	c := env.committee()
	c.Invoke(t, 500, "maxLoan", env.custodied)
	c.Invoke(t, 0, "maxLoan", env.primary)
	c.Invoke(t, true, "loansEnabled")

	// Free loan: the borrower arranges repayment of the bare principal.
	c.Invoke(t, 0, "loanFee", env.custodied, 200)
	c.Invoke(t, true, "borrow", borrower.Hash, env.custodied, 200, []byte("approve"))
	require.EqualValues(t, 500, env.storedBalance(t))
	require.EqualValues(t, 500, env.staked(t))
	require.EqualValues(t, 0, env.balanceOf(t, env.custodied, env.wrapper))

	// 1% fee, collected on top of the principal.
	c.Invoke(t, stackitem.Null{}, "setLoanFee", 10_000_000_000_000_000)
	c.Invoke(t, 2, "loanFee", env.custodied, 200)
	c.InvokeFail(t, "unknown loan asset", "loanFee", env.primary, 200)

	env.mint(t, env.custodied, borrower.Hash, 2)
	c.Invoke(t, true, "borrow", borrower.Hash, env.custodied, 200, []byte("approve"))
	require.EqualValues(t, 500, env.storedBalance(t))
	require.EqualValues(t, 500, env.staked(t))
	require.EqualValues(t, 0, env.balanceOf(t, env.custodied, borrower.Hash))
	require.EqualValues(t, 2, env.balanceOf(t, env.custodied, env.wrapper))

	// The collected fee is surplus absorbed by the next deposit.
	env.deposit(t, user, 10)
	require.EqualValues(t, 4, env.balanceOf(t, env.custodied, env.operator.ScriptHash()))
	require.EqualValues(t, 510, env.storedBalance(t))
	require.EqualValues(t, 510, env.staked(t))
	require.EqualValues(t, 0, env.balanceOf(t, env.custodied, env.wrapper))

	// Any failure rolls the whole loan back.
	c.InvokeFail(t, "not acknowledged", "borrow", borrower.Hash, env.custodied, 100, []byte("badack"))
	c.InvokeFail(t, "token pull failed", "borrow", borrower.Hash, env.custodied, 100, []byte("ack"))
	c.InvokeFail(t, "loan exceeds custody balance", "borrow", borrower.Hash, env.custodied, 600, []byte("approve"))
	c.InvokeFail(t, "unknown loan asset", "borrow", borrower.Hash, env.primary, 100, []byte("approve"))
	c.InvokeFail(t, "non-positive loan amount", "borrow", borrower.Hash, env.custodied, 0, []byte("approve"))
	require.EqualValues(t, 510, env.staked(t))

	// Disabling the facility stops quoting and borrowing.
	c.Invoke(t, stackitem.Null{}, "setLoansEnabled", false)
	c.Invoke(t, false, "loansEnabled")
	c.Invoke(t, 0, "maxLoan", env.custodied)
	c.InvokeFail(t, "flash loans are disabled", "loanFee", env.custodied, 100)
	c.InvokeFail(t, "flash loans are disabled", "borrow", borrower.Hash, env.custodied, 100, []byte("approve"))

	c.Invoke(t, stackitem.Null{}, "setLoansEnabled", true)
	c.Invoke(t, 510, "maxLoan", env.custodied)

	userInv := env.e.NewInvoker(env.wrapper, env.e.NewAccount(t))
	userInv.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setLoanFee", 1)
	userInv.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setLoansEnabled", false)
}

func TestWrapperSweepForeign(t *testing.T) {
	env := newWrapperEnv(t)
	user := env.e.NewAccount(t).ScriptHash()

	env.mint(t, env.primary, env.wrapper, 25)
	env.committee().Invoke(t, stackitem.Null{}, "sweepForeign", env.primary, user)
	require.EqualValues(t, 25, env.balanceOf(t, env.primary, user))

	env.committee().InvokeFail(t, "cannot sweep the custodied asset",
		"sweepForeign", env.custodied, user)

	userInv := env.e.NewInvoker(env.wrapper, env.e.NewAccount(t))
	userInv.InvokeFail(t, common.ErrCommitteeWitnessFailed, "sweepForeign", env.primary, user)
}
