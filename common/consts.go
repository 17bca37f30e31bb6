package common

const KeyAge = "age"

const RoleWalker = "dog walker"
const RoleGroomer = "dog groomer"

const DefaultEnvFile = ".env"
