/*

The resolve package turns values of varying shape into uniform HTTP responses.

At its center sits the [Resolvable] contract: any value able to derive a
[Response] - a status code, a set of uniquely keyed headers, and a fixed or
streamed body - for the request at hand. Values that cannot or choose not to
form a Response forward to the error catcher registered for a status code
instead; [Outcome] carries whichever of the two happened.

A [Resolver] dispatches plain values (strings, byte slices, readers, errors)
to built-in behaviors and defers to the value itself when it implements
[Resolvable]. [Option] and [Result] model the absent-value and
success/failure shapes, and [Headered] and [Status] wrap an inner value with
overrides layered on after the inner value resolves.

*/
package resolve
