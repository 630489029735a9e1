package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stakewrap/stakewrap-contract/common"
)

// deployFlashToken deploys the self-issuing flash token with the committee as
// issuer and the given fee sink.
func deployFlashToken(t *testing.T, e *neotest.Executor, feeSink util.Uint160, maxSupply int64) util.Uint160 {
	c := compileNamed(t, e, flashTokenPath, "")
	e.DeployContract(t, c, []interface{}{e.CommitteeHash, feeSink, maxSupply})
	return c.Hash
}

func TestFlashTokenNEP17(t *testing.T) {
	e := newExecutor(t)
	sink := e.NewAccount(t).ScriptHash()
	h := deployFlashToken(t, e, sink, 1000)
	c := e.CommitteeInvoker(h)

	c.Invoke(t, common.Version, "version")
	c.Invoke(t, "SWRAP", "symbol")
	c.Invoke(t, 8, "decimals")
	c.Invoke(t, 0, "totalSupply")

	user := e.NewAccount(t)
	user2 := e.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", user.ScriptHash(), 100)
	c.Invoke(t, 100, "balanceOf", user.ScriptHash())
	c.Invoke(t, 100, "totalSupply")

	userInv := e.NewInvoker(h, user)
	userInv.InvokeFail(t, "restricted to the issuer", "mint", user.ScriptHash(), 1)
	c.InvokeFail(t, "non-positive mint amount", "mint", user.ScriptHash(), 0)

	userInv.Invoke(t, true, "transfer", user.ScriptHash(), user2.ScriptHash(), 30, nil)
	c.Invoke(t, 70, "balanceOf", user.ScriptHash())
	c.Invoke(t, 30, "balanceOf", user2.ScriptHash())

	// Not enough assets and missing sender witness both refuse the move.
	userInv.Invoke(t, false, "transfer", user.ScriptHash(), user2.ScriptHash(), 1000, nil)
	userInv.Invoke(t, false, "transfer", user2.ScriptHash(), user.ScriptHash(), 1, nil)

	c.Invoke(t, stackitem.Null{}, "burn", user2.ScriptHash(), 30)
	c.Invoke(t, 0, "balanceOf", user2.ScriptHash())
	c.Invoke(t, 70, "totalSupply")

	userInv.InvokeFail(t, "restricted to the issuer", "burn", user.ScriptHash(), 1)
	c.InvokeFail(t, "not enough assets to burn", "burn", user2.ScriptHash(), 1)

	// Minting is bounded by the headroom the flash facility shares.
	c.Invoke(t, 930, "maxLoan", h)
}

func TestFlashTokenBorrow(t *testing.T) {
	e := newExecutor(t)
	sink := e.NewAccount(t).ScriptHash()
	h := deployFlashToken(t, e, sink, 1000)
	c := e.CommitteeInvoker(h)

	borrower := compileNamed(t, e, borrowerPath, "")
	e.DeployContract(t, borrower, nil)

	c.Invoke(t, 1000, "maxLoan", h)
	c.Invoke(t, 0, "maxLoan", util.Uint160{1})
	c.Invoke(t, true, "loansEnabled")

	// Free loan: the minted principal alone covers repayment.
	c.Invoke(t, 0, "loanFee", h, 200)
	c.Invoke(t, true, "borrow", borrower.Hash, h, 200, []byte("ack"))
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, 0, "balanceOf", borrower.Hash)

	// 5% fee, paid out of the borrower's pre-funded balance to the sink.
	c.Invoke(t, stackitem.Null{}, "setLoanFee", 50_000_000_000_000_000)
	c.Invoke(t, 10, "loanFee", h, 200)
	c.InvokeFail(t, "unknown loan asset", "loanFee", util.Uint160{1}, 200)

	c.Invoke(t, stackitem.Null{}, "mint", borrower.Hash, 10)
	c.Invoke(t, true, "borrow", borrower.Hash, h, 200, []byte("ack"))
	c.Invoke(t, 0, "balanceOf", borrower.Hash)
	c.Invoke(t, 10, "balanceOf", sink)
	c.Invoke(t, 10, "totalSupply")

	// Failures roll the issued principal back.
	c.InvokeFail(t, "not acknowledged", "borrow", borrower.Hash, h, 50, []byte("badack"))
	c.InvokeFail(t, "insufficient balance to repay loan", "borrow", borrower.Hash, h, 50, []byte("ack"))
	c.InvokeFail(t, "unknown loan asset", "borrow", borrower.Hash, util.Uint160{1}, 50, []byte("ack"))
	c.InvokeFail(t, "non-positive loan amount", "borrow", borrower.Hash, h, 0, []byte("ack"))
	c.Invoke(t, 10, "totalSupply")

	// The ceiling bounds the principal.
	c.Invoke(t, 990, "maxLoan", h)
	c.InvokeFail(t, "loan exceeds supply ceiling", "borrow", borrower.Hash, h, 991, []byte("ack"))

	c.Invoke(t, stackitem.Null{}, "setLoansEnabled", false)
	c.Invoke(t, false, "loansEnabled")
	c.Invoke(t, 0, "maxLoan", h)
	c.InvokeFail(t, "flash loans are disabled", "loanFee", h, 100)
	c.InvokeFail(t, "flash loans are disabled", "borrow", borrower.Hash, h, 100, []byte("ack"))

	userInv := e.NewInvoker(h, e.NewAccount(t))
	userInv.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setLoanFee", 1)
	userInv.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setLoansEnabled", true)
}
