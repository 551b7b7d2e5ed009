/*
Package transfer implements the ledger-consistency core: the five money
movement operations (top-up, withdraw, cash-in, cash-out, send-money) that
mutate one or two wallet balances and record a transaction atomically.

All five operations share one two-leg skeleton:

 1. Validate the amount and reject self-transfers.
 2. Open an atomic scope and row-lock the involved wallets in ascending
    user-id order.
 3. Verify wallet types against the operation's role constraints, apply the
    balance mutator to each leg (debit legs enforce balance >= 0) and save
    the wallets inside the scope.
 4. Write the transaction record with status pending. Where the backend
    allows it the write is independent of the wallet scope, so a failed
    commit still leaves a record behind.
 5. Commit. On success flip the record to completed; on any failure after
    the record was written flip it to reversed and return the original
    error unchanged.

Single-leg operations (top-up, withdraw) are the same skeleton with a nil
counterparty. The engine never retries: persistence-layer contention
surfaces as repositories.ErrTransientConflict and the caller decides.
*/
package transfer
