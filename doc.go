// Package mvar provides N-dimensional tensor-product splines and polynomials,
// so-called multivariates. A multivariate generalizes curves (one parameter),
// surfaces (two parameters) and volumes (three parameters) to any number of
// parameters. It is intended as the evaluation kernel underneath geometric algorithms
// such as intersection, bisector and offset computation, which evaluate
// multivariates many times inside numerical solvers.
//
// # Representation
//
// [MV] describes a multivariate by its dimension, its basis ([Power], [Bezier] or
// [BSpline]), its [PointType] and per-axis lengths, orders, knot vectors and
// periodicity. Control points are stored as one flat slice per coordinate channel;
// rational multivariates carry homogeneous weights in channel 0. Multivariates are
// created with [NewPower], [NewBezier] and [NewBSpline], or converted from fixed-arity
// [Curve], [Surface] and [Volume] values with [FromCurve], [FromSurface] and
// [FromVolume].
//
// Every operation that derives a multivariate from another one, such as
// [MV.IsoManifold], [MV.MeshSlice], [MV.ExpandDimension] or [MV.Subdivide], returns
// independent storage.
//
// # Evaluation
//
// [Evaluator] evaluates multivariates, their gradients and tangent hyperplanes. It
// owns scratch buffers that are reused between calls, which makes evaluation
// allocation-free in steady state. The convenience methods [MV.Eval], [MV.Gradient]
// and [MV.TangentHyperplane] use a fresh Evaluator per call.
//
// Evaluation results are homogeneous [Coord] values; [Coord.Euclidean] projects them.
//
// The building blocks of evaluation are exported as well: [BasisFuncs] computes the
// nonzero basis functions of one axis, and [MeshIndex] walks multi-indices of control
// meshes, including windows that wrap around periodic axes.
//
// # Errors
//
// Invalid input is a contract violation. Functions that construct or derive
// multivariates return an [*Error]; evaluation functions, which run in tight loops on
// already validated data, panic with one. In both cases the error's kind can be
// tested with [errors.Is] against [ErrDomain], [ErrAxis], [ErrIndex], [ErrArity],
// [ErrRepresentation], [ErrScalarExpected] and [ErrInvalid]. Use [Catch] to turn
// panics into errors where parameters come from untrusted input.
//
// # Literature
//
//   - The NURBS Book, 2nd edition, by Les Piegl and Wayne Tiller (algorithms A1.3,
//     A2.1 and A2.2)
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package mvar
