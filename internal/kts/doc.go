// Package kts loads Kotlin-DSL build settings files (`settings.gradle.kts`)
// restricted to the three statements that describe project topology:
//
//	rootProject.name = "iggy-java-client"
//	include("iggy-java-sdk", "iggy-java-example:simple-producer")
//	project(":iggy-java-sdk").projectDir = file("java-sdk")
//
// Blank lines and comments are skipped. Any other statement is rejected with
// its line number, since it may change the topology in ways this loader
// cannot see.
package kts
