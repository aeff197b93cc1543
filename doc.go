/*
Package cinelog implements the log encoding (OETF) and log decoding (EOTF)
transfer functions used by digital cinema cameras.

Tabulated curves such as the Blackmagic Film family are evaluated by
piecewise-linear interpolation over a small lookup table sampled at evenly
spaced points of the unit interval. Analytic curves (Sony S-Log, the RED log
variants, ITU-R BT.709) are evaluated in closed form. Both kinds satisfy the
Curve interface so they can be sampled into interchange LUT files (see the
lut subpackage) or applied to images.

All functions are pure and safe for concurrent use.
*/
package cinelog
