// stakewrap-dump prints the observable state of a deployed wrapper contract
// as JSON: custody counters, the reward ledger and, optionally, the vaults
// and pending earnings of one account.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stakewrap/stakewrap-contract/rpc/wrapper"
)

type rewardReport struct {
	Token     string   `json:"token"`
	Pool      string   `json:"pool,omitempty"`
	Integral  *big.Int `json:"integral"`
	Remaining *big.Int `json:"remaining"`
}

type earningReport struct {
	Token  string   `json:"token"`
	Amount *big.Int `json:"amount"`
}

type accountReport struct {
	Address           string          `json:"address"`
	AggregatedBalance *big.Int        `json:"aggregatedBalance"`
	Vaults            []string        `json:"vaults"`
	Earned            []earningReport `json:"earned"`
}

type report struct {
	RunID          string         `json:"runId"`
	Contract       string         `json:"contract"`
	CustodiedToken string         `json:"custodiedToken"`
	StoredBalance  *big.Int       `json:"storedBalance"`
	TotalManaged   *big.Int       `json:"totalManaged"`
	LoansEnabled   bool           `json:"loansEnabled"`
	MaxLoan        *big.Int       `json:"maxLoan"`
	Rewards        []rewardReport `json:"rewards"`
	Account        *accountReport `json:"account,omitempty"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractArg := flag.String("contract", "", "Wrapper contract script hash (LE hex)")
	accountArg := flag.String("account", "", "Optional account to report on (address or LE hex hash)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractArg == "":
		log.Fatal("missing wrapper contract hash")
	}

	contractHash, err := util.Uint160DecodeStringLE(strings.TrimPrefix(*contractArg, "0x"))
	if err != nil {
		log.Fatal(fmt.Errorf("parse contract hash: %w", err))
	}

	err = dump(*neoRPCEndpoint, contractHash, *accountArg)
	if err != nil {
		log.Fatal(err)
	}
}

func dump(endpoint string, contractHash util.Uint160, accountArg string) error {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	defer c.Close()

	reader := wrapper.NewReader(invoker.New(c, nil), contractHash)

	r := report{
		RunID:    uuid.NewString(),
		Contract: contractHash.StringLE(),
	}

	r.StoredBalance, err = reader.StoredBalance()
	if err != nil {
		return fmt.Errorf("get stored balance: %w", err)
	}

	r.TotalManaged, err = reader.TotalManaged()
	if err != nil {
		return fmt.Errorf("get total managed: %w", err)
	}

	r.LoansEnabled, err = reader.LoansEnabled()
	if err != nil {
		return fmt.Errorf("get loan facility state: %w", err)
	}

	custodied, err := reader.CustodiedToken()
	if err != nil {
		return fmt.Errorf("get custodied token: %w", err)
	}
	r.CustodiedToken = custodied.StringLE()

	r.MaxLoan, err = reader.MaxLoan(custodied)
	if err != nil {
		return fmt.Errorf("quote max loan: %w", err)
	}

	r.Rewards, err = collectRewards(reader)
	if err != nil {
		return err
	}

	if accountArg != "" {
		acc, err := parseAccount(accountArg)
		if err != nil {
			return fmt.Errorf("parse account: %w", err)
		}

		r.Account, err = collectAccount(reader, acc)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func collectRewards(reader *wrapper.ContractReader) ([]rewardReport, error) {
	count, err := reader.RewardCount()
	if err != nil {
		return nil, fmt.Errorf("get reward count: %w", err)
	}

	out := make([]rewardReport, 0, count.Int64())
	for i := int64(0); i < count.Int64(); i++ {
		rw, err := reader.RewardAt(big.NewInt(i))
		if err != nil {
			return nil, fmt.Errorf("get reward %d: %w", i, err)
		}

		rep := rewardReport{
			Token:     rw.Token.StringLE(),
			Integral:  rw.Integral,
			Remaining: rw.Remaining,
		}
		if !rw.Pool.Equals(util.Uint160{}) {
			rep.Pool = rw.Pool.StringLE()
		}
		out = append(out, rep)
	}

	return out, nil
}

func collectAccount(reader *wrapper.ContractReader, acc util.Uint160) (*accountReport, error) {
	rep := accountReport{Address: address.Uint160ToString(acc)}

	var err error
	rep.AggregatedBalance, err = reader.AggregatedBalance(acc)
	if err != nil {
		return nil, fmt.Errorf("get aggregated balance: %w", err)
	}

	vaults, err := reader.VaultsOf(acc)
	if err != nil {
		return nil, fmt.Errorf("get vaults: %w", err)
	}
	rep.Vaults = make([]string, len(vaults))
	for i := range vaults {
		rep.Vaults[i] = base58.Encode(vaults[i])
	}

	earned, err := reader.Earned(acc)
	if err != nil {
		return nil, fmt.Errorf("get earnings: %w", err)
	}
	rep.Earned = make([]earningReport, len(earned))
	for i := range earned {
		rep.Earned[i] = earningReport{
			Token:  earned[i].Token.StringLE(),
			Amount: earned[i].Amount,
		}
	}

	return &rep, nil
}

func parseAccount(s string) (util.Uint160, error) {
	acc, err := address.StringToUint160(s)
	if err == nil {
		return acc, nil
	}

	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}
