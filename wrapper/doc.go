/*
Wrapper contract is the custody and reward accounting contract of StakeWrap.

It accepts deposits of a single custodied token from an authorized operator,
stakes them in an external pool and streams the pool's reward tokens to
depositors in proportion to their share of the managed supply. An account's
share is not tracked by direct balances: it is aggregated from external
ownership records ("vaults") registered with this contract, so collateral held
in external vault systems earns rewards here.

Reward distribution is pull-based. Every balance-changing operation first
checkpoints the reward ledger: pending pool payouts are pulled in, balance
deltas are folded into per-token integral accumulators and the affected
account is settled against its pre-operation aggregated balance. The reward at
index 0 is the pool's primary reward; the reward at index 1 is derived from it
through an external converter contract and is never measured from its own pool
balance. Further reward tokens are discovered from the pool's auxiliary
streams and appended to the registry, which is idempotent by token identity.

The contract also exposes a flash-loan facility over the custodied token. The
principal is unstaked and issued to the receiver before its onLoan callback
runs; the callback must return the LoanAck value, after which principal plus
fee are reclaimed and the principal is staked back. Any deviation aborts the
whole invocation. The facility has an explicit enable switch and an
18-decimal fixed-point fee factor, both committee-controlled.

Contract notifications

Deposit notification:

  Deposit:
    - name: account
      type: Hash160
    - name: amount
      type: Integer

Withdraw notification:

  Withdraw:
    - name: account
      type: Hash160
    - name: amount
      type: Integer

RewardPaid notification, produced for every token paid out by a claim:

  RewardPaid:
    - name: account
      type: Hash160
    - name: token
      type: Hash160
    - name: amount
      type: Integer

RewardAdded notification, produced when a new reward token is registered:

  RewardAdded:
    - name: token
      type: Hash160
    - name: index
      type: Integer

VaultRegistered notification:

  VaultRegistered:
    - name: owner
      type: Hash160
    - name: vaultID
      type: ByteArray

VaultDeregistered notification:

  VaultDeregistered:
    - name: account
      type: Hash160
    - name: vaultID
      type: ByteArray

Loan notification, produced on a successful flash loan:

  Loan:
    - name: receiver
      type: Hash160
    - name: token
      type: Hash160
    - name: amount
      type: Integer
    - name: fee
      type: Integer
*/
package wrapper
