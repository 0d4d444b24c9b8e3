// Package futurecost provides admissible lower-bound estimators of the
// cost still required to connect a dijkstrasteiner label to a tree
// spanning every remaining terminal and the root. Every estimator is a
// deterministic function of (grid, label); memoization inside an
// estimator must never change the value it returns for a given label.
package futurecost
