// Package wrapper contains RPC wrappers for StakeWrap Wrapper contract.
package wrapper

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// WrapperReward is a contract-specific wrapper.Reward type used by its methods.
type WrapperReward struct {
	Token     util.Uint160
	Pool      util.Uint160
	Integral  *big.Int
	Remaining *big.Int
}

// WrapperEarning is a contract-specific wrapper.Earning type used by its methods.
type WrapperEarning struct {
	Token  util.Uint160
	Amount *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	Account util.Uint160
	Amount  *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	Account util.Uint160
	Amount  *big.Int
}

// RewardPaidEvent represents "RewardPaid" event emitted by the contract.
type RewardPaidEvent struct {
	Account util.Uint160
	Token   util.Uint160
	Amount  *big.Int
}

// RewardAddedEvent represents "RewardAdded" event emitted by the contract.
type RewardAddedEvent struct {
	Token util.Uint160
	Index *big.Int
}

// VaultRegisteredEvent represents "VaultRegistered" event emitted by the contract.
type VaultRegisteredEvent struct {
	Owner   util.Uint160
	VaultID []byte
}

// VaultDeregisteredEvent represents "VaultDeregistered" event emitted by the contract.
type VaultDeregisteredEvent struct {
	Account util.Uint160
	VaultID []byte
}

// LoanEvent represents "Loan" event emitted by the contract.
type LoanEvent struct {
	Receiver util.Uint160
	Token    util.Uint160
	Amount   *big.Int
	Fee      *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AggregatedBalance invokes `aggregatedBalance` method of contract.
func (c *ContractReader) AggregatedBalance(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "aggregatedBalance", account))
}

// CustodiedToken invokes `custodiedToken` method of contract.
func (c *ContractReader) CustodiedToken() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "custodiedToken"))
}

// Earned invokes `earned` method of contract.
func (c *ContractReader) Earned(account util.Uint160) ([]*WrapperEarning, error) {
	return func(item stackitem.Item, err error) ([]*WrapperEarning, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*WrapperEarning, len(arr))
		for i := range arr {
			res[i], err = itemToWrapperEarning(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(unwrap.Item(c.invoker.Call(c.hash, "earned", account)))
}

// LoanFee invokes `loanFee` method of contract.
func (c *ContractReader) LoanFee(token util.Uint160, amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "loanFee", token, amount))
}

// LoansEnabled invokes `loansEnabled` method of contract.
func (c *ContractReader) LoansEnabled() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "loansEnabled"))
}

// MaxLoan invokes `maxLoan` method of contract.
func (c *ContractReader) MaxLoan(token util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxLoan", token))
}

// RewardAt invokes `rewardAt` method of contract.
func (c *ContractReader) RewardAt(index *big.Int) (*WrapperReward, error) {
	return itemToWrapperReward(unwrap.Item(c.invoker.Call(c.hash, "rewardAt", index)))
}

// RewardCount invokes `rewardCount` method of contract.
func (c *ContractReader) RewardCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardCount"))
}

// StoredBalance invokes `storedBalance` method of contract.
func (c *ContractReader) StoredBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "storedBalance"))
}

// TotalManaged invokes `totalManaged` method of contract.
func (c *ContractReader) TotalManaged() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalManaged"))
}

// VaultsOf invokes `vaultsOf` method of contract.
func (c *ContractReader) VaultsOf(account util.Uint160) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "vaultsOf", account))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Borrow creates a transaction invoking `borrow` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Borrow(receiver util.Uint160, token util.Uint160, amount *big.Int, data []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "borrow", receiver, token, amount, data)
}

// BorrowTransaction creates a transaction invoking `borrow` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BorrowTransaction(receiver util.Uint160, token util.Uint160, amount *big.Int, data []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "borrow", receiver, token, amount, data)
}

// BorrowUnsigned creates a transaction invoking `borrow` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BorrowUnsigned(receiver util.Uint160, token util.Uint160, amount *big.Int, data []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "borrow", nil, receiver, token, amount, data)
}

// Checkpoint creates a transaction invoking `checkpoint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Checkpoint(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "checkpoint", account)
}

// CheckpointTransaction creates a transaction invoking `checkpoint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CheckpointTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "checkpoint", account)
}

// CheckpointUnsigned creates a transaction invoking `checkpoint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CheckpointUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "checkpoint", nil, account)
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", account)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", account)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, account)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", account, amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", account, amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, account, amount)
}

// DeregisterVault creates a transaction invoking `deregisterVault` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeregisterVault(vaultID []byte, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deregisterVault", vaultID, account)
}

// DeregisterVaultTransaction creates a transaction invoking `deregisterVault` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeregisterVaultTransaction(vaultID []byte, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deregisterVault", vaultID, account)
}

// DeregisterVaultUnsigned creates a transaction invoking `deregisterVault` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeregisterVaultUnsigned(vaultID []byte, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deregisterVault", nil, vaultID, account)
}

// DiscoverRewards creates a transaction invoking `discoverRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DiscoverRewards() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "discoverRewards")
}

// DiscoverRewardsTransaction creates a transaction invoking `discoverRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DiscoverRewardsTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "discoverRewards")
}

// DiscoverRewardsUnsigned creates a transaction invoking `discoverRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DiscoverRewardsUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "discoverRewards", nil)
}

// RegisterReward creates a transaction invoking `registerReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterReward(token util.Uint160, pool util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerReward", token, pool)
}

// RegisterRewardTransaction creates a transaction invoking `registerReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterRewardTransaction(token util.Uint160, pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerReward", token, pool)
}

// RegisterRewardUnsigned creates a transaction invoking `registerReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterRewardUnsigned(token util.Uint160, pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerReward", nil, token, pool)
}

// RegisterVault creates a transaction invoking `registerVault` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterVault(vaultID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerVault", vaultID)
}

// RegisterVaultTransaction creates a transaction invoking `registerVault` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterVaultTransaction(vaultID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerVault", vaultID)
}

// RegisterVaultUnsigned creates a transaction invoking `registerVault` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterVaultUnsigned(vaultID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerVault", nil, vaultID)
}

// SetLoanFee creates a transaction invoking `setLoanFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLoanFee(factor *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLoanFee", factor)
}

// SetLoanFeeTransaction creates a transaction invoking `setLoanFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLoanFeeTransaction(factor *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLoanFee", factor)
}

// SetLoanFeeUnsigned creates a transaction invoking `setLoanFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLoanFeeUnsigned(factor *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLoanFee", nil, factor)
}

// SetLoansEnabled creates a transaction invoking `setLoansEnabled` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLoansEnabled(enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLoansEnabled", enabled)
}

// SetLoansEnabledTransaction creates a transaction invoking `setLoansEnabled` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLoansEnabledTransaction(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLoansEnabled", enabled)
}

// SetLoansEnabledUnsigned creates a transaction invoking `setLoansEnabled` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLoansEnabledUnsigned(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLoansEnabled", nil, enabled)
}

// SweepForeign creates a transaction invoking `sweepForeign` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SweepForeign(token util.Uint160, to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sweepForeign", token, to)
}

// SweepForeignTransaction creates a transaction invoking `sweepForeign` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SweepForeignTransaction(token util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sweepForeign", token, to)
}

// SweepForeignUnsigned creates a transaction invoking `sweepForeign` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SweepForeignUnsigned(token util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sweepForeign", nil, token, to)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", account, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", account, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, account, amount)
}

// itemToWrapperReward converts stack item into *WrapperReward.
func itemToWrapperReward(item stackitem.Item, err error) (*WrapperReward, error) {
	if err != nil {
		return nil, err
	}
	var res = new(WrapperReward)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of WrapperReward from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *WrapperReward) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Token, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	index++
	res.Pool, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		// The derived reward's source slot is empty until discovery binds it.
		if len(b) == 0 {
			return util.Uint160{}, nil
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Pool: %w", err)
	}

	index++
	res.Integral, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Integral: %w", err)
	}

	index++
	res.Remaining, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Remaining: %w", err)
	}

	return nil
}

// itemToWrapperEarning converts stack item into *WrapperEarning.
func itemToWrapperEarning(item stackitem.Item, err error) (*WrapperEarning, error) {
	if err != nil {
		return nil, err
	}
	var res = new(WrapperEarning)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of WrapperEarning from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *WrapperEarning) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Token, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
