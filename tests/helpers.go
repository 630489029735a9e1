package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// wrapperEnv is a fully wired wrapper deployment: three independent token
// instances, the converter, the ownership ledger, the staking pool and the
// wrapper itself, plus a funded operator account.
type wrapperEnv struct {
	e        *neotest.Executor
	operator neotest.Signer

	custodied util.Uint160
	primary   util.Uint160
	derived   util.Uint160
	converter util.Uint160
	ledger    util.Uint160
	pool      util.Uint160
	wrapper   util.Uint160
}

func newWrapperEnv(t *testing.T) *wrapperEnv {
	e := newExecutor(t)

	custodied := deployTokenInstance(t, e, "Custodied Token")
	primary := deployTokenInstance(t, e, "Primary Reward Token")
	derived := deployTokenInstance(t, e, "Derived Reward Token")

	conv := compileNamed(t, e, converterPath, "")
	e.DeployContract(t, conv, nil)

	ledger := compileNamed(t, e, ledgerPath, "")
	e.DeployContract(t, ledger, nil)

	pool := compileNamed(t, e, poolPath, "")
	e.DeployContract(t, pool, []interface{}{custodied, primary, derived, conv.Hash})

	operator := e.NewAccount(t)

	wrapper := compileNamed(t, e, wrapperPath, "")
	e.DeployContract(t, wrapper, []interface{}{
		custodied, pool.Hash, ledger.Hash, conv.Hash,
		primary, derived, operator.ScriptHash(),
	})

	return &wrapperEnv{
		e:        e,
		operator: operator,

		custodied: custodied,
		primary:   primary,
		derived:   derived,
		converter: conv.Hash,
		ledger:    ledger.Hash,
		pool:      pool.Hash,
		wrapper:   wrapper.Hash,
	}
}

// committee invokes the wrapper with the committee signer.
func (w *wrapperEnv) committee() *neotest.ContractInvoker {
	return w.e.CommitteeInvoker(w.wrapper)
}

// asOperator invokes the wrapper with the operator signer.
func (w *wrapperEnv) asOperator() *neotest.ContractInvoker {
	return w.e.NewInvoker(w.wrapper, w.operator)
}

func (w *wrapperEnv) mint(t *testing.T, token, to util.Uint160, amount int64) {
	w.e.CommitteeInvoker(token).Invoke(t, stackitem.Null{}, "mint", to, amount)
}

func (w *wrapperEnv) balanceOf(t *testing.T, token, account util.Uint160) int64 {
	res, err := w.e.CommitteeInvoker(token).TestInvoke(t, "balanceOf", account)
	require.NoError(t, err)
	return res.Top().BigInt().Int64()
}

func (w *wrapperEnv) staked(t *testing.T) int64 {
	res, err := w.e.CommitteeInvoker(w.pool).TestInvoke(t, "staked")
	require.NoError(t, err)
	return res.Top().BigInt().Int64()
}

func (w *wrapperEnv) setPending(t *testing.T, amount int64) {
	w.e.CommitteeInvoker(w.pool).Invoke(t, stackitem.Null{}, "setPending", amount)
}

func (w *wrapperEnv) setVault(t *testing.T, id []byte, owner, assetClass util.Uint160, collateral int64) {
	w.e.CommitteeInvoker(w.ledger).Invoke(t, stackitem.Null{},
		"setVault", id, owner, assetClass, collateral)
}

// fundOperator mints custodied tokens to the operator account.
func (w *wrapperEnv) fundOperator(t *testing.T, amount int64) {
	w.mint(t, w.custodied, w.operator.ScriptHash(), amount)
}

func (w *wrapperEnv) deposit(t *testing.T, account util.Uint160, amount int64) {
	w.asOperator().Invoke(t, stackitem.Null{}, "deposit", account, amount)
}

func (w *wrapperEnv) withdraw(t *testing.T, account util.Uint160, amount int64) {
	w.asOperator().Invoke(t, stackitem.Null{}, "withdraw", account, amount)
}

// earned projects the pending payouts of the account as a token->amount map.
func (w *wrapperEnv) earned(t *testing.T, account util.Uint160) map[util.Uint160]int64 {
	res, err := w.committee().TestInvoke(t, "earned", account)
	require.NoError(t, err)

	out := make(map[util.Uint160]int64)
	for _, itm := range res.Top().Array() {
		fields := itm.Value().([]stackitem.Item)
		raw, err := fields[0].TryBytes()
		require.NoError(t, err)
		token, err := util.Uint160DecodeBytesBE(raw)
		require.NoError(t, err)
		amount, err := fields[1].TryInteger()
		require.NoError(t, err)
		out[token] = amount.Int64()
	}
	return out
}

// rewardState reads the integral and remaining fields of the reward record at
// the given registration index.
func (w *wrapperEnv) rewardState(t *testing.T, index int64) (*big.Int, int64) {
	res, err := w.committee().TestInvoke(t, "rewardAt", index)
	require.NoError(t, err)

	fields := res.Top().Array()
	integral, err := fields[2].TryInteger()
	require.NoError(t, err)
	remaining, err := fields[3].TryInteger()
	require.NoError(t, err)
	return integral, remaining.Int64()
}

func (w *wrapperEnv) totalManaged(t *testing.T) int64 {
	res, err := w.committee().TestInvoke(t, "totalManaged")
	require.NoError(t, err)
	return res.Top().BigInt().Int64()
}

func (w *wrapperEnv) storedBalance(t *testing.T) int64 {
	res, err := w.committee().TestInvoke(t, "storedBalance")
	require.NoError(t, err)
	return res.Top().BigInt().Int64()
}
