/*
Flash token contract is the self-issuing sibling of the StakeWrap wrapper.

It is a NEP-17 token with an issuer-controlled supply capped by a ceiling set
at deploy time. Its flash-loan facility lends the token's own supply: the
principal is minted to the receiver before its onLoan callback runs and burned
after principal plus fee are debited back, so the loan never survives the
invocation it was issued in. The fee is credited to a fee sink account. The
facility shares the callback protocol (and the LoanAck acknowledgement value)
with the wrapper contract's custody-backed facility.

Contract notifications

Transfer notification. This is NEP-17 standard notification.

  Transfer:
    - name: from
      type: Hash160
    - name: to
      type: Hash160
    - name: amount
      type: Integer

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
package flashtoken
