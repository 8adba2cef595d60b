package ipc

const testConfig = `{"unitInformation":[{"unitCategory":0,"display":"Filter","shorthand":"FF","cost":1.0,"stability":60.0},{"unitCategory":0,"display":"Encryptor","shorthand":"EF","cost":4.0,"stability":30.0},{"unitCategory":0,"display":"Destructor","shorthand":"DF","cost":3.0,"damage":4.0,"attackRange":3.5,"stability":75.0},{"unitCategory":1,"display":"Ping","shorthand":"PI","cost":1.0,"damage":1.0,"attackRange":3.5,"stability":15.0},{"unitCategory":1,"display":"EMP","shorthand":"EI","cost":3.0,"damage":3.0,"attackRange":5.5,"stability":5.0},{"unitCategory":1,"display":"Scrambler","shorthand":"SI","cost":1.0,"damage":0.0,"attackRange":3.5,"stability":40.0},{"display":"Remove","shorthand":"RM"}]}`

const testTurn = `{"p2Units":[[],[],[[13,16,75.0,"9"]],[],[],[],[]],"turnInfo":[0,3,-1],"p1Stats":[30.0,25.0,9.0,0],"p1Units":[[[0,13,60.0,"1"]],[],[[3,13,75.0,"2"]],[],[],[],[]],"p2Stats":[28.0,12.0,7.5,0],"events":{}}`

const testAction = `{"turnInfo":[1,3,12],"p1Stats":[29.0,25.0,9.0,0],"p2Stats":[28.0,12.0,7.5,0],"p1Units":[[],[],[],[],[],[],[]],"p2Units":[[],[],[],[],[],[],[]],"events":{"breach":[[[11,2],1.0,3,"31",2],[[16,25],1.0,3,"40",1]]}}`

const testEnd = `{"turnInfo":[2,9,40],"p1Stats":[0.0,1.0,2.0,0],"p2Stats":[12.0,3.0,4.0,0],"p1Units":[],"p2Units":[],"endStats":{"winner":2,"turns":9}}`
