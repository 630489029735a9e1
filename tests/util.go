package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	wrapperPath    = "../wrapper"
	flashTokenPath = "../flashtoken"

	tokenPath     = "../internal/testcontracts/token"
	ledgerPath    = "../internal/testcontracts/ledger"
	poolPath      = "../internal/testcontracts/pool"
	converterPath = "../internal/testcontracts/converter"
	borrowerPath  = "../internal/testcontracts/borrower"
	reenterPath   = "../internal/testcontracts/reenter"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// compileNamed compiles a contract and, if name is not empty, renames its
// manifest so that several instances of one source tree can be deployed to
// the same chain under distinct hashes.
func compileNamed(t *testing.T, e *neotest.Executor, ctrPath, name string) *neotest.Contract {
	c := neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
	if name == "" {
		return c
	}

	m := *c.Manifest
	m.Name = name
	return &neotest.Contract{
		Hash:     state.CreateContractHash(e.CommitteeHash, c.NEF.Checksum, m.Name),
		NEF:      c.NEF,
		Manifest: &m,
	}
}

func deployTokenInstance(t *testing.T, e *neotest.Executor, name string) util.Uint160 {
	c := compileNamed(t, e, tokenPath, name)
	e.DeployContract(t, c, nil)
	return c.Hash
}
