// Package paths provides standardized filesystem paths for the package and build trees.
//
// Package tree:
//
//	<root>/<ClassName>/metadata.xml
//	<root>/<ClassName>/<schema file referenced by metadata.xml>
//
// Build tree:
//
//	<buildRoot>/apps/<ClassName>.css
//	<buildRoot>/apps/<ClassName>.class.php
//	<buildRoot>/apps/<ClassName>.js
//	<buildRoot>/apps/<ClassName>.html   (Application and System only)
//
// Class names double as script identifiers in generated code, so
// ValidatePackageName rejects anything that is not identifier-safe.
package paths
