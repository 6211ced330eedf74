/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// provides a custom error interface and exit codes to use on rlite-node-config
package error

//
// Provided exit codes for rlite-node-config

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE
//
// This way the exit codes can be turned into a Markdown list of EXITCODE -> COMMENT

// Error running a command
const CommandRun = 11

// Error opening a file
const OpenFile = 24

// Error reading the script file
const ReadScript = 26

// Invalid runtime configuration
const InvalidConfig = 31

// Unknown error
const Unknown int = 255
