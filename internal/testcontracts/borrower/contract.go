package borrower

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// Flash borrower test double. The loan data payload scripts the callback
// behavior:
//
//	"approve" - grant the lender an allowance for principal plus fee and
//	            acknowledge (the custody-variant happy path),
//	"ack"     - acknowledge without arranging repayment (the self-issuing
//	            variant happy path when the balance suffices, a repayment
//	            failure otherwise),
//	"badack"  - return a wrong acknowledgement value.

const loanAck = "STAKEWRAP_FLASH_LOAN"

func OnLoan(_ interop.Hash160, token interop.Hash160, amount int, fee int, data interface{}) string {
	mode := string(data.([]byte))

	switch mode {
	case "approve":
		me := runtime.GetExecutingScriptHash()
		lender := runtime.GetCallingScriptHash()
		ok := contract.Call(token, "approve", contract.All, me, lender, amount+fee).(bool)
		if !ok {
			panic("approval failed")
		}
		return loanAck
	case "ack":
		return loanAck
	case "badack":
		return "DECLINED"
	}

	panic("unknown loan mode")
}

// OnNEP17Payment accepts incoming token transfers.
func OnNEP17Payment(_ interop.Hash160, _ int, _ interface{}) {
}
