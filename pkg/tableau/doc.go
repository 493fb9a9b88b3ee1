// Package tableau implements an analytic tableau prover for propositional
// logics. Given a signed formula, the engine constructs a refutation tree;
// if at least one branch remains open it extracts satisfying models,
// otherwise the formula is unsatisfiable.
//
// The prover is parameterized by a LogicDefinition so that classical
// two-valued logic, weak-Kleene three-valued logic, and a four-valued
// paraconsistent (FDE-style) logic share one engine. New logics register
// into a LogicRegistry either in Go (see logics_classical.go for the
// pattern) or by loading a YAML description (see logicyaml.go).
//
// The package is laid out as one flat package rather than many small
// ones, since the formula model, rule matcher, and tableau engine are
// mutually recursive and all reference each other's types directly.
package tableau
