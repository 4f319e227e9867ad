// Package models defines the core domain models for the mess ledger.
//
// # Input Records
//
// These are owned by the record store and consumed read-only by the
// ledger engine:
//   - Member: a person sharing mess expenses
//   - Period: one monthly accounting cycle
//   - MealRecord: one member's meal units for one day
//   - Deposit: money a member paid into the mess fund
//   - MealCost: grocery spend consumed by the whole mess
//   - OtherCost: a shared or individual non-meal expense
//
// # Engine Outputs
//
// Value objects computed from scratch on every call, never persisted
// back over the inputs:
//   - PeriodSummary: collective totals and the period meal rate
//   - MemberBalance: one member's settlement row
//
// # Design Principles
//
//  1. One explicit contract: there is exactly one field name per concept.
//     Callers normalize any legacy shapes before building these structs.
//  2. The engine never mutates inputs; outputs are plain values.
//  3. IDs are UUID strings, timestamps are unix seconds, dates are
//     "YYYY-MM-DD" strings.
package models
