package testutil

import "maps"

// IggySettingsKTS is the Kotlin-DSL settings file of the iggy Java client.
const IggySettingsKTS = `rootProject.name = "iggy-java-client"

include("iggy-java-sdk")
project(":iggy-java-sdk").projectDir = file("java-sdk")

include("iggy-java-example")
project(":iggy-java-example").projectDir = file("examples")

include("iggy-java-example:simple-producer")
project(":iggy-java-example:simple-producer").projectDir = file("examples/simple-producer")

include("iggy-java-example:simple-consumer")
project(":iggy-java-example:simple-consumer").projectDir = file("examples/simple-consumer")
`

// IggySettingsHCL describes the same projects in HCL, leaning on the
// directory convention for the examples.
const IggySettingsHCL = `root_name = "iggy-java-client"

include "iggy-java-sdk" {
  directory = file("java-sdk")
}

include "iggy-java-example" {
  directory = "examples"
}

include "iggy-java-example:simple-producer" {}
include "iggy-java-example:simple-consumer" {}
`

// IggySettingsYAML describes the same projects in YAML.
const IggySettingsYAML = `rootName: iggy-java-client
projects:
  - include: iggy-java-sdk
    directory: java-sdk
  - include: iggy-java-example
    directory: examples
  - include: iggy-java-example:simple-producer
  - include: iggy-java-example:simple-consumer
directories:
  iggy-java-example:simple-consumer: examples/simple-consumer
`

// IggyList is the expected `list` table of the iggy settings.
const IggyList = `IDENTIFIER                         DIRECTORY
iggy-java-sdk                      java-sdk
iggy-java-example                  examples
iggy-java-example:simple-producer  examples/simple-producer
iggy-java-example:simple-consumer  examples/simple-consumer
`

// IggyDirs is the source tree the iggy settings point at.
var IggyDirs = map[string]string{
	"java-sdk/build.gradle.kts":                 "plugins { java }\n",
	"examples/build.gradle.kts":                 "plugins { java }\n",
	"examples/simple-producer/build.gradle.kts": "plugins { application }\n",
	"examples/simple-consumer/build.gradle.kts": "plugins { application }\n",
}

// IggyTree returns IggyDirs plus the given settings file.
func IggyTree(settingsName, settings string) map[string]string {
	files := maps.Clone(IggyDirs)
	files[settingsName] = settings
	return files
}
