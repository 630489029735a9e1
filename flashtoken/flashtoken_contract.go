package flashtoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/stakewrap/stakewrap-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "SWRAP"
	decimals    = 8
	circulation = "TokenCirculation"

	issuerKey        = 'i'
	feeSinkKey       = 'k'
	maxSupplyKey     = 'u'
	loanFeeFactorKey = 'f'
	loansEnabledKey  = 'e'

	accPrefix = 'a'
)

// LoanAck is the value the onLoan callback of a flash borrower must return to
// acknowledge the loan terms. It is shared with the wrapper contract so one
// receiver implementation serves both facilities.
const LoanAck = "STAKEWRAP_FLASH_LOAN"

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		issuer    interop.Hash160
		feeSink   interop.Hash160
		maxSupply int
	})

	if len(args.issuer) != interop.Hash160Len || len(args.feeSink) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}
	if args.maxSupply <= 0 {
		panic("non-positive supply ceiling")
	}

	storage.Put(ctx, issuerKey, args.issuer)
	storage.Put(ctx, feeSinkKey, args.feeSink)
	storage.Put(ctx, maxSupplyKey, args.maxSupply)
	storage.Put(ctx, loanFeeFactorKey, 0)
	storage.Put(ctx, loansEnabledKey, true)

	runtime.Log("flash token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("flash token contract updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns the token precision.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of tokens
// in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of the
// account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, account)
}

// Transfer is a NEP-17 standard method that moves tokens between accounts.
// It can be invoked by the owner of the sending account only.
//
// Produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, data)
}

// Mint issues new tokens to the account without exceeding the supply ceiling.
// It can be invoked only by the issuer.
//
// Produces Transfer notification.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	issuer := storage.Get(ctx, issuerKey).(interop.Hash160)
	if !common.CalledByEntity(issuer) {
		panic("minting is restricted to the issuer")
	}
	if len(to) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if amount <= 0 {
		panic("non-positive mint amount")
	}

	mint(ctx, to, amount, nil)
}

// Burn destroys tokens held by the account. It can be invoked only by the
// issuer.
//
// Produces Transfer notification.
func Burn(from interop.Hash160, amount int) {
	ctx := storage.GetContext()
	issuer := storage.Get(ctx, issuerKey).(interop.Hash160)
	if !common.CalledByEntity(issuer) {
		panic("burning is restricted to the issuer")
	}
	if amount <= 0 {
		panic("non-positive burn amount")
	}

	burn(ctx, from, amount)
}

// MaxLoan returns the maximum flash-loan principal: the remaining headroom
// before the supply ceiling for this token itself, zero for any other token
// or while the facility is disabled.
func MaxLoan(loanToken interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	me := runtime.GetExecutingScriptHash()
	if !common.BytesEqual(loanToken, me) {
		return 0
	}
	if !storage.Get(ctx, loansEnabledKey).(bool) {
		return 0
	}

	return storage.Get(ctx, maxSupplyKey).(int) - token.getSupply(ctx)
}

// LoanFee quotes the flash-loan fee for borrowing the given amount. It fails
// for any token other than this one and while the facility is disabled.
func LoanFee(loanToken interop.Hash160, amount int) int {
	ctx := storage.GetReadOnlyContext()
	me := runtime.GetExecutingScriptHash()
	if !common.BytesEqual(loanToken, me) {
		panic("unknown loan asset")
	}

	return loanFee(ctx, amount)
}

// Borrow issues a flash loan by minting the principal to the receiver,
// running its onLoan(initiator, token, amount, fee, data) callback (which
// must return LoanAck), then debiting principal plus fee from the receiver's
// balance. The principal is burned and the fee is credited to the fee sink.
// Any failure aborts the whole invocation, including the mint.
//
// Produces Transfer and Loan notifications.
func Borrow(receiver interop.Hash160, loanToken interop.Hash160, amount int, data []byte) bool {
	if len(receiver) != interop.Hash160Len {
		panic("incorrect length of receiver script hash")
	}

	ctx := storage.GetContext()
	me := runtime.GetExecutingScriptHash()
	if !common.BytesEqual(loanToken, me) {
		panic("unknown loan asset")
	}
	if amount <= 0 {
		panic("non-positive loan amount")
	}

	fee := loanFee(ctx, amount)

	maxSupply := storage.Get(ctx, maxSupplyKey).(int)
	if token.getSupply(ctx)+amount > maxSupply {
		panic("loan exceeds supply ceiling")
	}

	initiator := runtime.GetCallingScriptHash()
	mint(ctx, receiver, amount, nil)

	ack := contract.Call(receiver, "onLoan", contract.All,
		initiator, me, amount, fee, data)
	if ack.(string) != LoanAck {
		panic("loan not acknowledged by receiver")
	}

	// The lender is the token itself, so reclamation is a direct debit.
	owed := amount + fee
	balance := getBalance(ctx, receiver)
	if balance < owed {
		panic("insufficient balance to repay loan")
	}

	burn(ctx, receiver, amount)
	if fee > 0 {
		feeSink := storage.Get(ctx, feeSinkKey).(interop.Hash160)
		setBalance(ctx, receiver, getBalance(ctx, receiver)-fee)
		setBalance(ctx, feeSink, getBalance(ctx, feeSink)+fee)
		runtime.Notify("Transfer", receiver, feeSink, fee)
	}

	runtime.Notify("Loan", receiver, me, amount, fee)
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

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func loanFee(ctx storage.Context, amount int) int {
	if !storage.Get(ctx, loansEnabledKey).(bool) {
		panic("flash loans are disabled")
	}

	factor := common.GetInt(ctx, loanFeeFactorKey)
	return common.FeeMul(amount, factor)
}

func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, data interface{}) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len || amount < 0 {
		runtime.Log("bad transfer arguments")
		return false
	}
	if !isUsableAddress(from) {
		runtime.Log("transfer is not authorized by the sender")
		return false
	}

	balance := getBalance(ctx, from)
	if balance < amount {
		runtime.Log("not enough assets")
		return false
	}

	setBalance(ctx, from, balance-amount)
	setBalance(ctx, to, getBalance(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)
	postTransfer(from, to, amount, data)

	return true
}

func mint(ctx storage.Context, to interop.Hash160, amount int, data interface{}) {
	setBalance(ctx, to, getBalance(ctx, to)+amount)
	storage.Put(ctx, token.CirculationKey, token.getSupply(ctx)+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	postTransfer(nil, to, amount, data)
}

func burn(ctx storage.Context, from interop.Hash160, amount int) {
	balance := getBalance(ctx, from)
	if balance < amount {
		panic("not enough assets to burn")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	setBalance(ctx, from, balance-amount)
	storage.Put(ctx, token.CirculationKey, supply-amount)

	runtime.Notify("Transfer", from, interop.Hash160(nil), amount)
}

// postTransfer invokes onNEP17Payment of contract recipients, as the NEP-17
// standard requires.
func postTransfer(from, to interop.Hash160, amount int, data interface{}) {
	if to == nil || management.GetContract(to) == nil {
		return
	}

	contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
}

// isUsableAddress checks if the sender is either a signing account or the
// calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if runtime.CheckWitness(addr) {
		return true
	}

	return common.BytesEqual(runtime.GetCallingScriptHash(), addr)
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	data := storage.Get(ctx, append([]byte{accPrefix}, account...))
	if data != nil {
		return data.(int)
	}

	return 0
}

func setBalance(ctx storage.Context, account interop.Hash160, amount int) {
	key := append([]byte{accPrefix}, account...)
	if amount == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, amount)
}
