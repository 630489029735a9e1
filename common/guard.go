package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

// ErrReentrantCall is thrown by EnterGuard on a nested invocation.
const ErrReentrantCall = "reentrant call"

// EnterGuard sets the reentrancy flag under the given key and panics if it is
// already set. The flag does not need to be cleared on failure paths: a panic
// reverts the whole invocation, including the flag write.
func EnterGuard(ctx storage.Context, key interface{}) {
	if storage.Get(ctx, key) != nil {
		panic(ErrReentrantCall)
	}
	storage.Put(ctx, key, []byte{1})
}

// ExitGuard clears the reentrancy flag on the successful path.
func ExitGuard(ctx storage.Context, key interface{}) {
	storage.Delete(ctx, key)
}
