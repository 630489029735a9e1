package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using a certain account but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be called
	// by the committee but was not.
	ErrCommitteeWitnessFailed = "committee witness check failed"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

// CheckCommitteeWitness panics with ErrCommitteeWitnessFailed unless the
// invocation carries the committee witness.
func CheckCommitteeWitness() {
	checkWitnessWithPanic(CommitteeAddress(), ErrCommitteeWitnessFailed)
}

// CommitteeAddress returns the multisignature address of the chain committee.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	threshold := len(committee)/2 + 1

	keys := []interop.PublicKey{}
	for _, key := range committee {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(threshold, keys)
}

// CalledByEntity returns true if the invocation either carries a witness of
// the given account or originates from a contract with the same hash. This is
// the authorization rule for role-gated entry points: the role may be held by
// a regular account or by another contract.
func CalledByEntity(entity interop.Hash160) bool {
	if runtime.CheckWitness(entity) {
		return true
	}

	return BytesEqual(runtime.GetCallingScriptHash(), entity)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
